package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/archivist-labs/atomdates/internal/config"
	"github.com/archivist-labs/atomdates/internal/dates"
)

// ParseCommand interprets a single date expression from the command line.
func ParseCommand(cfg *config.Config) *Command {
	var (
		jsonOut bool
		timid   bool
	)

	cmd := &Command{
		Name:        "parse",
		Usage:       "atomdates parse [options] <expression>",
		Description: "Parse one date expression and print the resolved triple",
		Flags:       flag.NewFlagSet("parse", flag.ExitOnError),
	}

	cmd.Flags.BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags.BoolVar(&timid, "timid", false, "Fail instead of degrading when nothing can be resolved")

	cmd.Run = func(c *Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("date expression required")
		}

		dcfg, err := cfg.DatesConfig()
		if err != nil {
			return err
		}
		if timid {
			dcfg.Timid = true
		}

		parser := dates.New(dcfg)
		triple, err := parser.ParseEventDates(strings.Join(args, " "))
		if err != nil {
			return err
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(triple)
		}

		label := color.New(color.FgCyan)
		label.Print("eventDates:      ")
		fmt.Println(triple.EventDates)
		label.Print("eventStartDates: ")
		fmt.Println(triple.EventStartDates)
		label.Print("eventEndDates:   ")
		fmt.Println(triple.EventEndDates)
		return nil
	}

	return cmd
}
