package dates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToTriple(t *testing.T, p *Parser, text string) (string, string, string) {
	t.Helper()
	r, err := p.Parse(text)
	require.NoError(t, err, "parsing %q", text)
	return r.Label, r.Start.Format(ISODate), r.End.Format(ISODate)
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	cases := []struct {
		in    string
		label string
		start string
		end   string
	}{
		// Bare years and permissive year forms.
		{"2000", "2000", "2000-01-01", "2000-12-31"},
		{"2000-00-00", "2000", "2000-01-01", "2000-12-31"},
		{"2018-XX-XX", "2018", "2018-01-01", "2018-12-31"},
		{"[ 2000? ]", "2000", "2000-01-01", "2000-12-31"},
		{"{1994}", "1994", "1994-01-01", "1994-12-31"},

		// Approximation qualifiers keep only the resolved date as label.
		{"Circa 2001", "2001", "2001-01-01", "2001-12-31"},
		{"[ca. 1999]", "1999", "1999-01-01", "1999-12-31"},
		{"approximately 1983", "1983", "1983-01-01", "1983-12-31"},
		{"c. 1940s", "1940s", "1940-01-01", "1949-12-31"},
		{"ca.1999", "1999", "1999-01-01", "1999-12-31"},
		{"c.1990s", "1990s", "1990-01-01", "1999-12-31"},
		{"ca 1985", "1985", "1985-01-01", "1985-12-31"},

		// Year ranges, including abbreviated second years.
		{"2000-2005", "2000 - 2005", "2000-01-01", "2005-12-31"},
		{"2000 to 2005", "2000 - 2005", "2000-01-01", "2005-12-31"},
		{"1901-20", "1901 - 1920", "1901-01-01", "1920-12-31"},
		{"2001-00-00 and 2002-00-00", "2001 - 2002", "2001-01-01", "2002-12-31"},
		{"[Between 1996 and 1998]", "1996 - 1998", "1996-01-01", "1998-12-31"},

		// Decades and centuries.
		{"1990s", "1990s", "1990-01-01", "1999-12-31"},
		{"1920's", "1920s", "1920-01-01", "1929-12-31"},
		{"190-", "1900s", "1900-01-01", "1909-12-31"},
		{"Early 1990s", "1990s", "1990-01-01", "1993-12-31"},
		{"Late 1940s", "1940s", "1947-01-01", "1949-12-31"},
		{"1930s - 1940s", "1930 - 1949", "1930-01-01", "1949-12-31"},
		{"1990s-2000s", "1990 - 2009", "1990-01-01", "2009-12-31"},
		{"19th century", "19th century", "1801-01-01", "1900-12-31"},
		{"20th Century", "20th century", "1901-01-01", "2000-12-31"},

		// Fully specified numeric dates.
		{"1999-09-01", "1999-09-01", "1999-09-01", "1999-09-01"},
		{"12/01/1984", "1984-12-01", "1984-12-01", "1984-12-01"},
		{"15-01-2000", "2000-01-15", "2000-01-15", "2000-01-15"},
		{"2014.03.03", "2014-03-03", "2014-03-03", "2014-03-03"},

		// Blank month or day components.
		{"2005-00-01", "2005", "2005-01-01", "2005-12-31"},
		{"2021-06-00", "June 2021", "2021-06-01", "2021-06-30"},

		// Numeric ranges with month or day precision.
		{"2009-05-00 to 2010-02-00", "May 2009 - February 2010", "2009-05-01", "2010-02-28"},
		{"2005/04/06 - 2005/04/08", "April 6, 2005 - April 8, 2005", "2005-04-06", "2005-04-08"},
		{"2009-05-20 to 2008-09-16", "September 16, 2008 - May 20, 2009", "2008-09-16", "2009-05-20"},

		// Month words.
		{"August 1974", "August 1974", "1974-08-01", "1974-08-31"},
		{"Jan. 1979", "January 1979", "1979-01-01", "1979-01-31"},
		{"Late May 2003", "May 2003", "2003-05-21", "2003-05-31"},
		{"end of June 1944", "June 1944", "1944-06-16", "1944-06-30"},
		{"January 17, 2009", "2009-01-17", "2009-01-17", "2009-01-17"},
		{"mar. 6 1994", "1994-03-06", "1994-03-06", "1994-03-06"},
		{"30-jan-19", "1919-01-30", "1919-01-30", "1919-01-30"},
		{"1-mar-1908", "1908-03-01", "1908-03-01", "1908-03-01"},
		{"September 29, 2002 to September 30, 2002",
			"September 29, 2002 - September 30, 2002", "2002-09-29", "2002-09-30"},

		// Seasons.
		{"Spring 2002", "Spring 2002", "2002-03-01", "2002-05-31"},
		{"Summer 1985", "Summer 1985", "1985-06-01", "1985-08-31"},
		{"Fall 1991", "Fall 1991", "1991-09-01", "1991-11-30"},
		{"Winter 2001", "Winter 2001", "2001-12-01", "2002-02-28"},
		{"Christmas 1999", "Christmas 1999", "1999-12-20", "1999-12-31"},
		{"Easter 1916", "Easter 1916", "1916-04-01", "1916-04-30"},

		// Mixed-precision textual ranges.
		{"April 1887-1889", "April 1887 - 1889", "1887-04-01", "1889-12-31"},
		{"April 1887-89", "April 1887 - 1889", "1887-04-01", "1889-12-31"},
		{"April - May 1887", "April 1887 - May 1887", "1887-04-01", "1887-05-31"},
		{"Summer 1955 to Winter 1955", "Summer 1955 - Winter 1955", "1955-06-01", "1956-02-29"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			label, start, end := parseToTriple(t, p, tc.in)
			assert.Equal(t, tc.label, label)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestParser_Parse_UnknownMarkers(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	markers := []string{
		"", "   ", "n.d.", "nd", "NULL", "undated", "no date", "n/a",
		"unknown", "date unknown", "19-?", "0000-00-00", "9999-01-01", "7",
	}
	for _, in := range markers {
		in := in
		t.Run("marker "+in, func(t *testing.T) {
			t.Parallel()
			label, start, end := parseToTriple(t, p, in)
			assert.Equal(t, "Unknown date", label)
			assert.Equal(t, "1800-01-01", start)
			assert.Equal(t, "2010-01-01", end)
		})
	}
}

func TestParser_Parse_ConfiguredSynonyms(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UnknownSynonyms = []string{"various"}
	cfg.Timid = true
	p := New(cfg)

	t.Run("Should treat a configured synonym as unknown", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("Various")
		require.NoError(t, err)
		assert.Equal(t, "Unknown date", r.Label)
	})

	t.Run("Should not treat unlisted words as unknown", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse("miscellaneous")
		var unparseable *UnparseableDateError
		require.ErrorAs(t, err, &unparseable)
		assert.Equal(t, "miscellaneous", unparseable.Expression)
	})
}

func TestParser_Parse_ImpossibleDates(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	for _, in := range []string{
		"2000-02-31",
		"February 30, 1950",
		"1999-04-31 to 1999-05-02",
	} {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := p.Parse(in)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Error(), "cannot resolve date")
		})
	}
}

func TestParser_Parse_TimidMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Timid = true
	p := New(cfg)

	_, err := p.Parse("gibberish, not a date")
	var unparseable *UnparseableDateError
	require.ErrorAs(t, err, &unparseable)
	assert.Equal(t, "gibberish, not a date", unparseable.Expression)
}

func TestParser_Parse_Degrade(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	t.Run("Should salvage a year buried in unparseable text", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("inventory #4, likely 1955")
		require.NoError(t, err)
		assert.Equal(t, "inventory #4, likely 1955", r.Label)
		assert.Equal(t, "1955-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "1955-12-31", r.End.Format(ISODate))
	})

	t.Run("Should fall back to the unknown range with the original label", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("box #7, assorted gibberish")
		require.NoError(t, err)
		assert.Equal(t, "box #7, assorted gibberish", r.Label)
		assert.Equal(t, "1800-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "2010-01-01", r.End.Format(ISODate))
	})

	t.Run("Should ignore a year before the unknown start", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("ledger fragment, 1750 or thereabouts")
		require.NoError(t, err)
		assert.Equal(t, "ledger fragment, 1750 or thereabouts", r.Label)
		assert.Equal(t, "1800-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "2010-01-01", r.End.Format(ISODate))
	})

	t.Run("Should ignore a year in the future", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("mislabelled box, 2999 stamped on lid")
		require.NoError(t, err)
		assert.Equal(t, "mislabelled box, 2999 stamped on lid", r.Label)
		assert.Equal(t, "1800-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "2010-01-01", r.End.Format(ISODate))
	})

	t.Run("Should skip an out-of-bounds year for a later usable one", func(t *testing.T) {
		t.Parallel()
		r, err := p.Parse("stamped 2999, received 1988 per register")
		require.NoError(t, err)
		assert.Equal(t, "1988-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "1988-12-31", r.End.Format(ISODate))
	})
}

func TestParser_Parse_OrderInvariance(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	pairs := [][2]string{
		{"1996-1998", "1998-1996"},
		{"2005/04/06 - 2005/04/08", "2005/04/08 - 2005/04/06"},
		{"1930s - 1940s", "1940s - 1930s"},
	}
	for _, pair := range pairs {
		pair := pair
		t.Run(pair[0], func(t *testing.T) {
			t.Parallel()
			a, err := p.Parse(pair[0])
			require.NoError(t, err)
			b, err := p.Parse(pair[1])
			require.NoError(t, err)
			assert.Equal(t, a.Start, b.Start)
			assert.Equal(t, a.End, b.End)
			assert.False(t, a.End.Before(a.Start))
		})
	}
}

func TestParser_Parse_CenturyConventions(t *testing.T) {
	t.Parallel()

	t.Run("Should span 1801-1900 under the ordinal convention", func(t *testing.T) {
		t.Parallel()
		p := New(DefaultConfig())
		r, err := p.Parse("19th century")
		require.NoError(t, err)
		assert.Equal(t, "1801-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "1900-12-31", r.End.Format(ISODate))
	})

	t.Run("Should span 1800-1899 under the literal convention", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Centuries = CenturyLiteral
		p := New(cfg)
		r, err := p.Parse("19th century")
		require.NoError(t, err)
		assert.Equal(t, "1800-01-01", r.Start.Format(ISODate))
		assert.Equal(t, "1899-12-31", r.End.Format(ISODate))
	})

	t.Run("Should reject the 0th century", func(t *testing.T) {
		t.Parallel()
		p := New(DefaultConfig())
		_, err := p.Parse("0th century")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestParser_Parse_CustomUnknowns(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UnknownLabel = "Date not yet determined"
	cfg.UnknownStart = ymd(1900, 1, 1)
	cfg.UnknownEnd = ymd(1999, 12, 31)
	p := New(cfg)

	r, err := p.Parse("undated")
	require.NoError(t, err)
	assert.Equal(t, "Date not yet determined", r.Label)
	assert.Equal(t, "1900-01-01", r.Start.Format(ISODate))
	assert.Equal(t, "1999-12-31", r.End.Format(ISODate))
}

func TestNew_SwapsReversedUnknowns(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UnknownStart, cfg.UnknownEnd = cfg.UnknownEnd, cfg.UnknownStart
	p := New(cfg)

	r := p.UnknownRange()
	assert.True(t, r.Start.Before(r.End))
}

func TestParser_ParseEventDates(t *testing.T) {
	t.Parallel()
	p := New(DefaultConfig())

	t.Run("Should format the CSV triple", func(t *testing.T) {
		t.Parallel()
		triple, err := p.ParseEventDates("circa 1990s")
		require.NoError(t, err)
		assert.Equal(t, EventDates{
			EventDates:      "1990s",
			EventStartDates: "1990-01-01",
			EventEndDates:   "1999-12-31",
		}, triple)
	})

	t.Run("Should pass parse errors through", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseEventDates("2000-02-31")
		var perr *ParseError
		assert.True(t, errors.As(err, &perr))
	})
}
