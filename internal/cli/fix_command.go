package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/archivist-labs/atomdates/internal/config"
	"github.com/archivist-labs/atomdates/internal/csvfix"
	"github.com/archivist-labs/atomdates/internal/dates"
)

// FixCommand repairs the date columns of a CSV export.
func FixCommand(cfg *config.Config) *Command {
	var (
		inPath      string
		outPath     string
		profilePath string
	)

	cmd := &Command{
		Name:        "fix",
		Usage:       "atomdates fix -in <file.csv> [-out <file.csv>] [options]",
		Description: "Repair the date columns of an AtoM CSV export",
		Flags:       flag.NewFlagSet("fix", flag.ExitOnError),
	}

	cmd.Flags.StringVar(&inPath, "in", "", "Input CSV file (required)")
	cmd.Flags.StringVar(&outPath, "out", "-", "Output CSV file, - for stdout")
	cmd.Flags.StringVar(&profilePath, "profile", "", "YAML column profile")

	cmd.Run = func(c *Command, args []string) error {
		if inPath == "" {
			return fmt.Errorf("-in is required")
		}

		fixer, prof, err := buildFixer(cfg, profilePath)
		if err != nil {
			return err
		}

		in, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer in.Close()

		var out io.Writer = os.Stdout
		if outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "atomdates",
		})

		res, err := fixer.FixFile(in, out, prof, logger)
		if err != nil {
			return err
		}

		logger.Info("done", "rows", res.Rows, "changed", res.Changed, "failed", res.Failed)
		return nil
	}

	return cmd
}

// buildFixer assembles a fixer and column profile from the configuration.
func buildFixer(cfg *config.Config, profilePath string) (*csvfix.Fixer, csvfix.Profile, error) {
	dcfg, err := cfg.DatesConfig()
	if err != nil {
		return nil, csvfix.Profile{}, err
	}

	prof := csvfix.DefaultProfile()
	if profilePath != "" {
		prof, err = csvfix.LoadProfile(profilePath)
		if err != nil {
			return nil, csvfix.Profile{}, err
		}
	}

	return csvfix.NewFixer(dates.New(dcfg)), prof, nil
}
