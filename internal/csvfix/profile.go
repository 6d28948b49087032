package csvfix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile maps the three date columns onto CSV header names. The defaults
// match the AtoM archival description and accession templates; a YAML file
// overrides them for exports that renamed the columns.
type Profile struct {
	DatesColumn string `yaml:"dates_column"`
	StartColumn string `yaml:"start_column"`
	EndColumn   string `yaml:"end_column"`
}

// DefaultProfile returns the AtoM column names.
func DefaultProfile() Profile {
	return Profile{
		DatesColumn: "eventDates",
		StartColumn: "eventStartDates",
		EndColumn:   "eventEndDates",
	}
}

// LoadProfile reads a column profile from a YAML file. Missing fields keep
// their defaults.
func LoadProfile(path string) (Profile, error) {
	prof := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &prof); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if prof.DatesColumn == "" || prof.StartColumn == "" || prof.EndColumn == "" {
		return Profile{}, fmt.Errorf("profile %s must name all three date columns", path)
	}
	return prof, nil
}
