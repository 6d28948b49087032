package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"github.com/archivist-labs/atomdates/internal/cli"
	"github.com/archivist-labs/atomdates/internal/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	if err := cli.Root(cfg).Execute(flag.Args()); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
