// Package config loads the atomdates TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/archivist-labs/atomdates/internal/dates"
)

// Fallback mirrors the options forwarded to the natural-language parser.
type Fallback struct {
	Languages        []string `toml:"languages"`
	PreferDayOfMonth string   `toml:"prefer_day_of_month"`
	PreferDateSource string   `toml:"prefer_date_source"`
}

// Config is the on-disk configuration. Dates are yyyy-mm-dd strings so the
// file stays hand-editable; DatesConfig validates and converts them.
type Config struct {
	UnknownDate       string   `toml:"unknown_date"`
	UnknownStartDate  string   `toml:"unknown_start_date"`
	UnknownEndDate    string   `toml:"unknown_end_date"`
	Timid             bool     `toml:"timid"`
	UnknownSynonyms   []string `toml:"unknown_synonyms"`
	CenturyConvention string   `toml:"century_convention"`
	Fallback          Fallback `toml:"fallback"`
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UnknownDate:       "Unknown date",
		UnknownStartDate:  "1800-01-01",
		UnknownEndDate:    "2010-01-01",
		CenturyConvention: string(dates.CenturyOrdinal),
		Fallback: Fallback{
			Languages:        []string{"en"},
			PreferDayOfMonth: dates.PreferFirst,
			PreferDateSource: dates.PreferPast,
		},
	}
}

// DefaultPath returns the conventional config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "atomdates.toml"
	}
	return filepath.Join(home, ".config", "atomdates", "config.toml")
}

// Load reads a config file. A missing file is not an error: the defaults
// are returned so the tool works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, nil
}

// DatesConfig validates the file values and converts them into the parser
// configuration.
func (c *Config) DatesConfig() (dates.Config, error) {
	start, err := parseISODate("unknown_start_date", c.UnknownStartDate)
	if err != nil {
		return dates.Config{}, err
	}
	end, err := parseISODate("unknown_end_date", c.UnknownEndDate)
	if err != nil {
		return dates.Config{}, err
	}

	conv := dates.CenturyConvention(c.CenturyConvention)
	switch conv {
	case "", dates.CenturyOrdinal, dates.CenturyLiteral:
	default:
		return dates.Config{}, fmt.Errorf("century_convention %q is not %q or %q",
			c.CenturyConvention, dates.CenturyOrdinal, dates.CenturyLiteral)
	}

	return dates.Config{
		UnknownLabel:    c.UnknownDate,
		UnknownStart:    start,
		UnknownEnd:      end,
		Timid:           c.Timid,
		UnknownSynonyms: c.UnknownSynonyms,
		Centuries:       conv,
		Fallback: dates.FallbackOptions{
			Languages:        c.Fallback.Languages,
			PreferDayOfMonth: c.Fallback.PreferDayOfMonth,
			PreferDateSource: c.Fallback.PreferDateSource,
		},
	}, nil
}

func parseISODate(field, value string) (time.Time, error) {
	if !isoDateRe.MatchString(value) {
		return time.Time{}, fmt.Errorf("%s %q does not match yyyy-mm-dd format", field, value)
	}
	t, err := time.ParseInLocation(dates.ISODate, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q is not a valid date: %w", field, value, err)
	}
	return t, nil
}
