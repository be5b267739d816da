package cmd

import (
	"errors"
	"fmt"
	"os"

	"tcr/internal/config"
	"tcr/internal/logging"
	"tcr/internal/ui"
)

// ErrSettingsExist is returned by init when the settings file is already present
var ErrSettingsExist = errors.New("settings file already exists")

// InitCmd writes a settings file
type InitCmd struct {
	Force   bool `help:"Overwrite an existing settings file" short:"f"`
	NoInput bool `help:"Write the defaults without asking"`
}

// Run executes the init command
func (i *InitCmd) Run(cli *CLI) error {
	path := cli.SettingsFile

	existing, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !i.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrSettingsExist, path)
	}

	settings := config.DefaultSettings().Merge(existing)
	if !i.NoInput {
		result, err := ui.RunInitForm(settings)
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Println("Cancelled")
			return nil
		}
		answers, err := result.Settings()
		if err != nil {
			return err
		}
		settings = settings.Merge(answers)
	}

	if _, err := settings.Resolve(); err != nil {
		return err
	}

	if err := config.SaveSettings(path, settings); err != nil {
		return err
	}

	logging.Logger.Info("Settings file written", "path", path)
	fmt.Printf("Settings written to %s\n", path)
	return nil
}
