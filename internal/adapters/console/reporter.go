package console

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"tcr/internal/domain"
	"tcr/internal/ports"
	"tcr/internal/theme"
)

// Reporter prints pipeline progress for a human watching the terminal
type Reporter struct {
	out     io.Writer
	root    string
	verbose bool
}

// Verify interface compliance at compile time
var _ ports.StageReporter = (*Reporter)(nil)

// NewReporter creates a reporter writing to out.
// Paths under root are shown relative to it.
// When verbose is set, skipped events and the output of passing stages are printed too.
func NewReporter(out io.Writer, root string, verbose bool) *Reporter {
	return &Reporter{
		out:     out,
		root:    root,
		verbose: verbose,
	}
}

// ReportQualified prints accepted events, and skipped ones in verbose mode
func (r *Reporter) ReportQualified(event domain.ChangeEvent, qualification domain.Qualification) {
	if qualification != domain.QualificationAccepted {
		if r.verbose {
			fmt.Fprintf(r.out, "%s %s %s\n",
				theme.SkippedSymbolStyle.Render(domain.SymbolSkipped),
				theme.SkippedStyle.Render(string(qualification)),
				theme.MutedStyle.Render(r.paths(event.Paths)))
		}
		return
	}

	fmt.Fprintf(r.out, "\n%s %s\n",
		theme.TitleStyle.Render("▶ change"),
		theme.NormalStyle.Render(r.paths(event.Paths)))
}

// ReportStage prints one line per stage, followed by its output when it failed
func (r *Reporter) ReportStage(result *domain.StageResult) {
	status := ""
	if !result.Success {
		status = theme.ErrorStyle.Render(fmt.Sprintf("exit %d", result.ExitCode))
	}
	fmt.Fprintf(r.out, "  %s %s %s %s\n",
		theme.StageSymbol(result.Success),
		theme.StageHeaderStyle.Render(fmt.Sprintf("%-6s", result.Stage)),
		theme.MutedStyle.Render(formatDuration(result.Duration)),
		status)

	if !result.Success || r.verbose {
		r.writeOutput(result.Stdout)
		r.writeOutput(result.Stderr)
	}
}

// ReportStageError prints a stage that could not be started
func (r *Reporter) ReportStageError(stage domain.Stage, err error) {
	fmt.Fprintf(r.out, "  %s %s %s\n",
		theme.FailedSymbolStyle.Render(domain.SymbolFailed),
		theme.StageHeaderStyle.Render(fmt.Sprintf("%-6s", stage)),
		theme.ErrorStyle.Render(err.Error()))
}

// ReportRun prints the final outcome of a run
func (r *Reporter) ReportRun(report *domain.RunReport) {
	line := fmt.Sprintf("%s %s",
		theme.OutcomeStyle(report.Outcome).Render(outcomeLabel(report.Outcome)),
		theme.MutedStyle.Render(formatDuration(report.FinishedAt.Sub(report.StartedAt))))
	if report.Escalated() && report.Error != "" {
		line += " " + theme.ErrorStyle.Render(report.Error)
	}
	fmt.Fprintln(r.out, line)
}

// RenderSummary prints the totals of a watch session
func RenderSummary(out io.Writer, summary *domain.RunSummary) {
	fmt.Fprintln(out, theme.TitleStyle.Render("TCR session summary"))
	fmt.Fprintln(out, strings.Repeat("─", 30))

	rows := []struct {
		count int
		label string
	}{
		{summary.Committed, "committed"},
		{summary.Reverted, "reverted"},
		{summary.CommitFailed, "commit failed"},
		{summary.RevertFailed, "revert failed"},
		{summary.Interrupted, "interrupted"},
		{summary.Debounced, "debounced"},
		{summary.Ignored, "ignored"},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%-16s %s\n", theme.LabelStyle.Render(row.label), theme.NormalStyle.Render(fmt.Sprintf("%d", row.count)))
	}

	fmt.Fprintln(out, strings.Repeat("─", 30))
	fmt.Fprintf(out, "%-16s %d\n", "events", summary.Total)
}

// RenderHistory prints recent runs, newest first
func RenderHistory(out io.Writer, runs []domain.RunReport, root string) {
	fmt.Fprintln(out, theme.TitleStyle.Render("Recent runs"))
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs yet.")
		return
	}

	paths := NewReporter(out, root, false)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tOUTCOME\tFAILED STAGE\tDURATION\tTRIGGER")
	for _, run := range runs {
		outcome := string(run.Outcome)
		if run.Qualification != domain.QualificationAccepted {
			outcome = string(run.Qualification)
		}
		failed := string(run.FailedStage)
		if failed == "" {
			failed = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.StartedAt.Format(time.TimeOnly),
			outcome,
			failed,
			formatDuration(run.FinishedAt.Sub(run.StartedAt)),
			paths.paths(run.Trigger))
	}
	w.Flush()
}

func (r *Reporter) writeOutput(output []byte) {
	output = bytes.TrimRight(output, "\r\n")
	if len(output) == 0 {
		return
	}
	for _, line := range strings.Split(string(output), "\n") {
		fmt.Fprintf(r.out, "    %s\n", strings.TrimRight(line, "\r"))
	}
}

func (r *Reporter) paths(paths []string) string {
	shown := make([]string, len(paths))
	for i, p := range paths {
		shown[i] = p
		if r.root == "" {
			continue
		}
		if rel, err := filepath.Rel(r.root, p); err == nil && !strings.HasPrefix(rel, "..") {
			shown[i] = rel
		}
	}
	return strings.Join(shown, ", ")
}

func outcomeLabel(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeCommitted:
		return domain.SymbolPassed + " committed"
	case domain.OutcomeReverted:
		return domain.SymbolFailed + " reverted"
	case domain.OutcomeCommitFailed:
		return domain.SymbolFailed + " commit failed"
	case domain.OutcomeRevertFailed:
		return domain.SymbolFailed + " revert failed"
	default:
		return string(outcome)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
