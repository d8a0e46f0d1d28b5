package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"declutter/internal/adapters/tui/views"
	"declutter/internal/application/commands"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// DirOpener shows a directory to the user
type DirOpener interface {
	Open(dir string) error
}

// ViewState represents the current view
type ViewState int

const (
	ViewProgress ViewState = iota
	ViewReport
	ViewHelp
)

// App is the main TUI application model. It runs one cleanup and then
// shows the summary of that session.
type App struct {
	cleanup *commands.CleanupCommand
	ledger  ports.ActivityLedger
	opener  DirOpener

	state    ViewState
	progress *views.ProgressModel
	report   *views.ReportModel
	help     *views.HelpModel

	err    error
	width  int
	height int
}

// NewApp creates a new TUI application. opener may be nil.
func NewApp(cleanup *commands.CleanupCommand, ledger ports.ActivityLedger, opener DirOpener) *App {
	a := &App{
		cleanup: cleanup,
		ledger:  ledger,
		opener:  opener,
		state:   ViewProgress,
		help:    views.NewHelpModel(),
	}
	a.progress = views.NewProgressModel(cleanup.SourceDir, a.run)
	return a
}

// Err returns the error that ended the run, if any
func (a *App) Err() error {
	return a.err
}

func (a *App) run() tea.Msg {
	ctx := context.Background()

	result, err := a.cleanup.Execute(ctx)
	if err != nil {
		return views.CleanupErrMsg{Err: err}
	}
	summary, err := commands.NewSummaryCommand(a.ledger, result.SessionID).Execute(ctx)
	if err != nil {
		return views.CleanupErrMsg{Err: err}
	}
	return views.CleanupDoneMsg{Result: result, Summary: summary}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.progress.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.progress.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		if a.report != nil {
			a.report.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case views.CleanupDoneMsg:
		a.report = views.NewReportModel(msg.Result, msg.Summary)
		if a.opener != nil {
			archives, _ := a.cleanup.Rules.Destination(domain.CategoryArchives)
			a.report.WithOpener(archives, a.opener.Open)
		}
		a.report.SetSize(a.width, a.height)
		a.state = ViewReport
		return a, nil

	case views.CleanupErrMsg:
		a.err = msg.Err
		return a, tea.Quit

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReportMsg:
		a.state = ViewReport
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewProgress:
		_, cmd = a.progress.Update(msg)
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewReport:
		return a.report.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.progress.View()
	}
}
