package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tcr/internal/domain"
)

// Main styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	StageHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Stage symbol styles
var (
	FailedSymbolStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	PassedSymbolStyle = lipgloss.NewStyle().
				Foreground(ColorCommitted).
				Bold(true)

	SkippedSymbolStyle = lipgloss.NewStyle().
				Foreground(ColorSkipped)
)

// Outcome styles
var (
	CommittedStyle = lipgloss.NewStyle().
			Foreground(ColorCommitted).
			Bold(true)

	EscalatedStyle = lipgloss.NewStyle().
			Foreground(ColorEscalated).
			Bold(true)

	RevertedStyle = lipgloss.NewStyle().
			Foreground(ColorReverted).
			Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorSkipped)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// OutcomeStyle returns the style used to render a run outcome
func OutcomeStyle(outcome domain.Outcome) lipgloss.Style {
	switch outcome {
	case domain.OutcomeCommitted:
		return CommittedStyle
	case domain.OutcomeReverted:
		return RevertedStyle
	case domain.OutcomeCommitFailed, domain.OutcomeRevertFailed:
		return EscalatedStyle
	default:
		return SkippedStyle
	}
}

// StageSymbol returns the rendered symbol for a stage result
func StageSymbol(success bool) string {
	if success {
		return PassedSymbolStyle.Render(domain.SymbolPassed)
	}
	return FailedSymbolStyle.Render(domain.SymbolFailed)
}
