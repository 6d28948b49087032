package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2000", "2000"},
		{"  2000  ", "2000"},
		{"[1994]", "1994"},
		{"{1994}", "1994"},
		{"[ 2000? ]", "2000"},
		{"2000?", "2000"},
		{"[Between 1996 and 1998]", "1996 and 1998"},
		{"between  1996   and 1998", "1996 and 1998"},
		{"April   1887 -  1889", "April 1887 - 1889"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestSplitBy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1995", "1999"}, SplitBy("1995 and 1999", " and "))
	assert.Equal(t, []string{"2000"}, SplitBy("2000", " and "))
	assert.Equal(t, []string{"2000"}, SplitBy("  2000 and  ", " and "))
	assert.Nil(t, SplitBy("", " and "))
}

func TestCardinality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Cardinality(""))
	assert.Equal(t, 0, Cardinality("   "))
	assert.Equal(t, 1, Cardinality("2000"))
	assert.Equal(t, 2, Cardinality("1999|2000"))
	assert.Equal(t, 3, Cardinality("a|b|c"))
}
