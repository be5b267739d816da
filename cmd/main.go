package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"tcr/internal/cmd"
	"tcr/version"
)

func main() {
	// Parse CLI arguments with Kong
	// Logging is initialized in CLI.AfterApply()
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("tcr"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
