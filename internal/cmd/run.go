package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tcr/internal/domain"
)

// RunCmd runs the pipeline once, without watching
type RunCmd struct {
	PipelineFlags `embed:""`

	FailOnRevert bool     `help:"Exit with a non-zero status when the change was reverted"`
	Paths        []string `arg:"" optional:"" help:"Paths recorded as the trigger of this run"`
}

// Run executes build, test, then commit or revert
func (r *RunCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := NewContainer(ctx, cli, r.PipelineFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer container.Close()

	trigger := make([]string, 0, len(r.Paths))
	for _, p := range r.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		trigger = append(trigger, abs)
	}

	report, err := container.Pipeline.Run(ctx, trigger)
	if err != nil {
		return err
	}

	if r.FailOnRevert && report.Outcome == domain.OutcomeReverted {
		return fmt.Errorf("%s stage failed, change reverted", report.FailedStage)
	}
	return nil
}
