package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"tcr/internal/config"
)

// ConfigCmd displays settings metadata
type ConfigCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the config command
func (c *ConfigCmd) Run(cli *CLI) error {
	infos := config.GetSettingsInfo()

	if c.Format == "json" {
		output := map[string]any{
			"settings_file": cli.SettingsFile,
			"format":        config.GetSettingsExample(),
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", cli.SettingsFile)
	fmt.Println("Available settings:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tENV\tEXAMPLE")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%v\n", info.Key, info.EnvVar, info.Example)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("The file is JSON, or YAML when its name ends in .yaml or .yml.")
	fmt.Println("Precedence: command-line flags > environment > settings file.")

	return nil
}
