package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tcr/internal/config"
	"tcr/internal/domain"
)

// InitFormResult contains the values entered in the init form
type InitFormResult struct {
	BuildCmd   string
	Cancelled  bool
	CommitCmd  string
	DebounceMs string
	RevertCmd  string
	TestCmd    string
}

// InitForm is a Bubble Tea component asking for the four TCR commands
type InitForm struct {
	Completed bool
	form      *huh.Form
	result    InitFormResult
}

// NewInitForm creates a form pre-filled with defaults
func NewInitForm(defaults *config.Settings) *InitForm {
	f := &InitForm{
		result: InitFormResult{
			BuildCmd:   valueOr(defaults.BuildCmd, config.DefaultBuildCmd),
			CommitCmd:  valueOr(defaults.CommitCmd, config.DefaultCommitCmd),
			DebounceMs: strconv.Itoa(config.DefaultDebounceMs),
			RevertCmd:  valueOr(defaults.RevertCmd, config.DefaultRevertCmd),
			TestCmd:    valueOr(defaults.TestCmd, config.DefaultTestCmd),
		},
	}
	if defaults.DebounceMs != nil {
		f.result.DebounceMs = strconv.Itoa(*defaults.DebounceMs)
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			commandInput("Build command", "Runs first; a failure reverts the change", &f.result.BuildCmd),
			commandInput("Test command", "Runs after a successful build", &f.result.TestCmd),
			commandInput("Commit command", "Runs when build and test pass", &f.result.CommitCmd),
			commandInput("Revert command", "Restores the last commit after a failure", &f.result.RevertCmd),
			huh.NewInput().
				Title("Debounce (ms)").
				Description("Quiet window between two pipeline runs").
				Value(&f.result.DebounceMs).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("expected a non-negative number of milliseconds")
					}
					return nil
				}),
		),
	)

	return f
}

func commandInput(title, description string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Value(value).
		Validate(func(s string) error {
			_, err := domain.ParseCommand(s)
			return err
		})
}

func (f *InitForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *InitForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, tea.Quit
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		return f, tea.Quit
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, tea.Quit
	}

	return f, cmd
}

func (f *InitForm) View() string {
	if f.form == nil || f.Completed {
		return ""
	}
	return f.form.View()
}

// Result returns the form result
func (f *InitForm) Result() InitFormResult {
	return f.result
}

// Settings converts the form result into settings
func (r InitFormResult) Settings() (*config.Settings, error) {
	debounce, err := strconv.Atoi(r.DebounceMs)
	if err != nil {
		return nil, fmt.Errorf("%w: debounce_ms: %w", config.ErrInvalidSettings, err)
	}
	return &config.Settings{
		BuildCmd:   &r.BuildCmd,
		CommitCmd:  &r.CommitCmd,
		DebounceMs: &debounce,
		RevertCmd:  &r.RevertCmd,
		TestCmd:    &r.TestCmd,
	}, nil
}

// RunInitForm shows the form on the terminal and returns what was entered
func RunInitForm(defaults *config.Settings) (InitFormResult, error) {
	form := NewInitForm(defaults)
	if _, err := tea.NewProgram(form).Run(); err != nil {
		return InitFormResult{}, fmt.Errorf("failed to run init form: %w", err)
	}
	return form.Result(), nil
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
