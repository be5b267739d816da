package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	adapterconsole "tcr/internal/adapters/console"
	adapterwatcher "tcr/internal/adapters/watcher"
	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/services"
	"tcr/internal/theme"
)

// eventBuffer absorbs bursts of notifications while a stage is running
const eventBuffer = 256

// WatchCmd watches the repository and runs the pipeline on every change
type WatchCmd struct {
	PipelineFlags `embed:""`

	History int `help:"Print the N most recent runs on exit (0 = none)" default:"0"`
}

// Run executes the watch loop until interrupted
func (w *WatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := NewContainer(ctx, cli, w.PipelineFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer container.Close()

	warnUncommittedChanges(ctx, container)

	source := adapterwatcher.NewFSWatcher(container.Root, container.Filter.ShouldSkipDir)
	loop := services.NewEventLoop(container.Pipeline)
	events := make(chan domain.ChangeEvent, eventBuffer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return source.Watch(gctx, events)
	})
	g.Go(func() error {
		return loop.Run(gctx, events)
	})

	go func() {
		select {
		case <-source.Ready():
			fmt.Printf("%s %s %s\n",
				theme.TitleStyle.Render("tcr watching"),
				container.Root,
				theme.MutedStyle.Render(fmt.Sprintf("(debounce %s, Ctrl+C to stop)", container.Config.Debounce)))
		case <-gctx.Done():
		}
	}()

	err = g.Wait()
	logging.Logger.Info("Watch stopped",
		"handled", loop.Handled(),
		"escalations", loop.Escalations(),
		"error", err)

	w.printReport(container)

	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// warnUncommittedChanges tells the operator that the first revert may discard work in progress
func warnUncommittedChanges(ctx context.Context, container *Container) {
	ok, top := container.Workspace.IsGitRepo(ctx, container.Root)
	if !ok {
		logging.Logger.Info("Root is not a git repository, skipping status check", "root", container.Root)
		return
	}

	changes, err := container.Workspace.UncommittedChanges(ctx, top)
	if err != nil {
		logging.Logger.Warn("Failed to check for uncommitted changes", "error", err)
		return
	}
	if len(changes) == 0 {
		return
	}

	fmt.Printf("%s %d uncommitted change(s) in %s; the first revert may discard them\n",
		theme.ErrorStyle.Render("warning:"), len(changes), top)
}

// printReport prints the session summary and, when asked, the recent runs
func (w *WatchCmd) printReport(container *Container) {
	ctx := context.Background()
	fmt.Println()

	summary, err := container.Recorder.Summary(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to summarize runs", "error", err)
		return
	}
	adapterconsole.RenderSummary(os.Stdout, summary)

	if w.History <= 0 {
		return
	}

	runs, err := container.Recorder.List(ctx, w.History)
	if err != nil {
		logging.Logger.Warn("Failed to list runs", "error", err)
		return
	}
	fmt.Println()
	adapterconsole.RenderHistory(os.Stdout, runs, container.Root)
}
