package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"declutter/internal/adapters/tui/styles"
)

// ProgressModel shows a spinner while a cleanup runs
type ProgressModel struct {
	ViewState
	spinner   spinner.Model
	sourceDir string
	run       tea.Cmd
}

// NewProgressModel creates a progress view. run performs the cleanup and
// must return a CleanupDoneMsg or CleanupErrMsg.
func NewProgressModel(sourceDir string, run tea.Cmd) *ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &ProgressModel{
		spinner:   s,
		sourceDir: sourceDir,
		run:       run,
	}
}

// Init starts the spinner and the cleanup
func (m *ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

// Update handles messages for the progress view
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, ReportKeys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the progress view
func (m *ProgressModel) View() string {
	return NewViewBuilder().
		Title("Declutter").
		Line(m.spinner.View() + " Sorting " + m.sourceDir + "...").
		BlankLine().
		Help(ReportKeys.Quit).
		String()
}
