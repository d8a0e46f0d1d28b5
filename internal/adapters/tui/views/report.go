package views

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"declutter/internal/application/commands"
)

// ReportKeyMap defines key bindings for the report view
type ReportKeyMap struct {
	Copy key.Binding
	Open key.Binding
	Help key.Binding
	Quit key.Binding
}

var ReportKeys = ReportKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy summary"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open archive"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReportModel renders the result of a run and the session summary
type ReportModel struct {
	ViewState
	result  *commands.CleanupResult
	summary *commands.SummaryResult
	copy    func(string) error

	archiveDir string
	open       func(string) error
}

// NewReportModel creates a report view for a finished run
func NewReportModel(result *commands.CleanupResult, summary *commands.SummaryResult) *ReportModel {
	return &ReportModel{
		result:  result,
		summary: summary,
		copy:    clipboard.WriteAll,
	}
}

// WithOpener enables the open key for the archive directory
func (m *ReportModel) WithOpener(archiveDir string, open func(string) error) *ReportModel {
	m.archiveDir = archiveDir
	m.open = open
	return m
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, ReportKeys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, ReportKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(keyMsg, ReportKeys.Copy):
		if m.summary == nil {
			return m, nil
		}
		if err := m.copy(m.summary.Text); err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		} else {
			m.SetMessage("Summary copied to clipboard", false)
		}
	case key.Matches(keyMsg, ReportKeys.Open):
		if m.open == nil || m.archiveDir == "" {
			return m, nil
		}
		if err := m.open(m.archiveDir); err != nil {
			m.SetMessage(fmt.Sprintf("Open failed: %v", err), true)
		} else {
			m.SetMessage("Opened "+m.archiveDir, false)
		}
	}
	return m, nil
}

// View renders the report view
func (m *ReportModel) View() string {
	v := NewViewBuilder().Title("Declutter")

	if m.result != nil {
		v.Line(RenderMessage(m.result.Message, len(m.result.Failed) > 0))
		for _, f := range m.result.Failed {
			v.Line(RenderMessage("  "+f.Err.Error(), true))
		}
		if n := m.result.LedgerFailures(); n > 0 {
			v.Line(RenderMessage(fmt.Sprintf("%d moves could not be recorded in the ledger", n), true))
		}
		v.BlankLine()
	}

	if m.summary != nil {
		s := m.summary.Summary
		v.Muted("Session " + s.SessionID).BlankLine()

		v.Section("Action counts")
		if len(s.Counts) == 0 {
			v.Muted("  No actions recorded in this session.")
		}
		for _, ac := range s.SortedCounts() {
			v.Line(RenderActionCount(ac))
		}
		v.BlankLine()

		v.Section("Recent actions")
		if len(s.Recent) == 0 {
			v.Muted("  No recent actions in this session.")
		}
		for _, e := range s.Recent {
			v.Line(RenderEntry(e))
		}
		v.BlankLine()
	}

	bindings := []key.Binding{ReportKeys.Copy}
	if m.open != nil {
		bindings = append(bindings, ReportKeys.Open)
	}
	bindings = append(bindings, ReportKeys.Help, ReportKeys.Quit)

	return v.Message(m.Message, m.MessageErr).
		Help(bindings...).
		String()
}
