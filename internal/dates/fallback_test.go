package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackParser(t *testing.T) {
	t.Parallel()
	f := newFallbackParser(DefaultConfig().Fallback)

	t.Run("Should resolve a spelled-out date", func(t *testing.T) {
		t.Parallel()
		r, ok := f.parse("25 December 2009")
		require.True(t, ok)
		assert.Equal(t, "2009-12-25", r.Start.Format(ISODate))
		assert.Equal(t, "2009-12-25", r.End.Format(ISODate))
	})

	t.Run("Should widen month precision to the whole month", func(t *testing.T) {
		t.Parallel()
		r, ok := f.parse("december 2009")
		require.True(t, ok)
		assert.Equal(t, "2009-12-01", r.Start.Format(ISODate))
		assert.Equal(t, "2009-12-31", r.End.Format(ISODate))
	})

	t.Run("Should widen year precision to the whole year", func(t *testing.T) {
		t.Parallel()
		r, ok := f.parse("2004")
		require.True(t, ok)
		assert.Equal(t, "2004", r.Label)
		assert.Equal(t, "2004-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "2004-12-31", r.End.Format(ISODate))
	})

	t.Run("Should decline a date in the future", func(t *testing.T) {
		t.Parallel()
		_, ok := f.parse("2199-03-05")
		assert.False(t, ok)
	})

	t.Run("Should decline text with no date in it", func(t *testing.T) {
		t.Parallel()
		_, ok := f.parse("assorted correspondence")
		assert.False(t, ok)
	})
}
