package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jd/internal/adapters/tui/views"
	"jd/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	help    *views.HelpModel

	selected string
}

// NewApp creates a browser over the index at root. editor may be nil.
func NewApp(store ports.IndexStore, root string, editor ports.EditorOpener) *App {
	return &App{
		editor:  editor,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store, root),
		help:    views.NewHelpModel(),
	}
}

// SetStrict makes the browser refuse an index that has diagnostics
func (a *App) SetStrict(strict bool) {
	a.browser.Strict = strict
}

// Selected returns the path chosen with enter, or "" if the user quit
func (a *App) Selected() string {
	return a.selected
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.browser.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.SelectMsg:
		a.selected = msg.Path
		return a, tea.Quit

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.browser.View()
}
