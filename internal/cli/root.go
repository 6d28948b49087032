// Package cli wires the atomdates commands together.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/archivist-labs/atomdates/internal/config"
)

// Command is one CLI command with optional flags and subcommands.
type Command struct {
	Name        string
	Usage       string
	Description string
	Flags       *flag.FlagSet
	Run         func(c *Command, args []string) error
	Subcommands []*Command
}

// Root creates the top-level command.
func Root(cfg *config.Config) *Command {
	return &Command{
		Name:        "atomdates",
		Usage:       "atomdates <command> [options]",
		Description: "Normalize archival date expressions into clean date ranges",
		Subcommands: []*Command{
			ParseCommand(cfg),
			FixCommand(cfg),
			ReviewCommand(cfg),
		},
	}
}

// Execute dispatches to a subcommand, or parses flags and runs this command.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
			c.PrintHelp()
			return nil
		}
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				return sub.Execute(args[1:])
			}
		}
	}

	if c.Run == nil {
		c.PrintHelp()
		if len(args) > 0 {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		return nil
	}

	if c.Flags != nil {
		if err := c.Flags.Parse(args); err != nil {
			return err
		}
		args = c.Flags.Args()
	}
	return c.Run(c, args)
}

// PrintHelp writes usage information for the command and its subcommands.
func (c *Command) PrintHelp() {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintln(os.Stderr, c.Description)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Usage: %s\n", c.Usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintln(os.Stderr)
		bold.Fprintln(os.Stderr, "Commands:")
		for _, sub := range c.Subcommands {
			cyan.Fprintf(os.Stderr, "  %-10s", sub.Name)
			fmt.Fprintf(os.Stderr, " %s\n", sub.Description)
		}
	}

	if c.Flags != nil {
		fmt.Fprintln(os.Stderr)
		bold.Fprintln(os.Stderr, "Options:")
		c.Flags.SetOutput(os.Stderr)
		c.Flags.PrintDefaults()
	}
}
