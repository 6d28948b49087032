package cli

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/archivist-labs/atomdates/internal/config"
	"github.com/archivist-labs/atomdates/internal/tui"
)

// ReviewCommand opens the interactive review screen for a CSV export.
func ReviewCommand(cfg *config.Config) *Command {
	var (
		inPath      string
		profilePath string
	)

	cmd := &Command{
		Name:        "review",
		Usage:       "atomdates review -in <file.csv> [options]",
		Description: "Browse proposed date fixes and flag rows for follow-up",
		Flags:       flag.NewFlagSet("review", flag.ExitOnError),
	}

	cmd.Flags.StringVar(&inPath, "in", "", "Input CSV file (required)")
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
		rows, err := fixer.Preview(in, prof)
		in.Close()
		if err != nil {
			return err
		}

		final, err := tea.NewProgram(tui.New(rows), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("review screen failed: %w", err)
		}

		model, ok := final.(tui.Model)
		if !ok {
			return nil
		}
		flagged := model.Flagged()
		if len(flagged) == 0 {
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%d row(s) flagged for follow-up:\n", len(flagged))
		for _, row := range flagged {
			if row.Err != nil {
				color.Red("  line %d: %q (%v)", row.Line, row.Raw, row.Err)
			} else {
				fmt.Printf("  line %d: %q → %s | %s | %s\n",
					row.Line, row.Raw,
					row.Fixed.EventDates, row.Fixed.EventStartDates, row.Fixed.EventEndDates)
			}
		}
		return nil
	}

	return cmd
}
