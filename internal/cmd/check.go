package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
)

// CheckCmd reports how changes to paths would be qualified
type CheckCmd struct {
	Format string   `help:"Output format: table or json" enum:"table,json" default:"table"`
	Paths  []string `arg:"" help:"Paths to check, relative to the current directory"`
}

// PathCheck is the classification of one path
type PathCheck struct {
	Ignored bool   `json:"ignored"`
	IsDir   bool   `json:"is_dir"`
	Path    string `json:"path"`
	Reason  string `json:"reason,omitempty"`
}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	filter, err := NewIgnoreFilter(cli.Root)
	if err != nil {
		return err
	}

	checks := make([]PathCheck, 0, len(c.Paths))
	for _, p := range c.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}

		// Missing paths are checked as files, like a deletion event
		isDir := false
		if info, err := os.Lstat(abs); err == nil {
			isDir = info.IsDir()
		}

		reason := filter.Explain(abs, isDir)
		checks = append(checks, PathCheck{
			Ignored: reason != "",
			IsDir:   isDir,
			Path:    abs,
			Reason:  reason,
		})
	}

	if c.Format == "json" {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tSTATUS\tREASON")
	for _, check := range checks {
		status := "triggers"
		reason := "-"
		if check.Ignored {
			status = "ignored"
			reason = check.Reason
		}
		display := check.Path
		if rel, err := filepath.Rel(cli.Root, check.Path); err == nil {
			display = rel
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", display, status, reason)
	}
	return w.Flush()
}
