package csvfix

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `legacyId,eventDates,eventStartDates,eventEndDates,title
1,circa 1990s,,,Photo album
2,2000-02-31,,,Torn negative
3,1999-09-01,1999-09-01,1999-09-01,Letter
4,undated,,,Loose clipping
`

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestFixer_FixFile(t *testing.T) {
	t.Parallel()
	f := newTestFixer(t)

	var out strings.Builder
	res, err := f.FixFile(strings.NewReader(sampleCSV), &out, DefaultProfile(), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rows)
	assert.Equal(t, 2, res.Changed)
	assert.Equal(t, 1, res.Failed)

	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Row 1 resolved to the decade span.
	assert.Equal(t, []string{"1", "1990s", "1990-01-01", "1999-12-31", "Photo album"}, records[1])
	// Row 2 is impossible and written through unchanged.
	assert.Equal(t, []string{"2", "2000-02-31", "", "", "Torn negative"}, records[2])
	// Row 3 was already clean.
	assert.Equal(t, []string{"3", "1999-09-01", "1999-09-01", "1999-09-01", "Letter"}, records[3])
	// Row 4 got the unknown defaults.
	assert.Equal(t, []string{"4", "Unknown date", "1800-01-01", "2010-01-01", "Loose clipping"}, records[4])
}

func TestFixer_FixFile_MissingColumn(t *testing.T) {
	t.Parallel()
	f := newTestFixer(t)

	in := strings.NewReader("legacyId,title\n1,Photo\n")
	var out strings.Builder
	_, err := f.FixFile(in, &out, DefaultProfile(), discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "eventDates"`)
}

func TestFixer_Preview(t *testing.T) {
	t.Parallel()
	f := newTestFixer(t)

	rows, err := f.Preview(strings.NewReader(sampleCSV), DefaultProfile())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "circa 1990s", rows[0].Raw)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, "1990s", rows[0].Fixed.EventDates)

	assert.Error(t, rows[1].Err)
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("Should read a full profile", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "profile.yaml")
		data := "dates_column: creationDates\nstart_column: creationStart\nend_column: creationEnd\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		prof, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "creationDates", prof.DatesColumn)
		assert.Equal(t, "creationStart", prof.StartColumn)
		assert.Equal(t, "creationEnd", prof.EndColumn)
	})

	t.Run("Should keep defaults for omitted fields", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dates_column: creationDates\n"), 0o644))

		prof, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "creationDates", prof.DatesColumn)
		assert.Equal(t, "eventStartDates", prof.StartColumn)
	})

	t.Run("Should reject a blanked-out column", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`dates_column: ""`+"\n"), 0o644))

		_, err := LoadProfile(path)
		require.Error(t, err)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
