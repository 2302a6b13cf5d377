package tui

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"jd/internal/adapters/tui/views"
)

type failingEditor struct{}

func (failingEditor) Open(string) error { return errors.New("no editor") }

func (failingEditor) Command(string) (*exec.Cmd, error) {
	return nil, errors.New("no editor")
}

func TestApp_HelpToggle(t *testing.T) {
	app := NewApp(nil, "/jd", nil)

	app.Update(views.SwitchToHelpMsg{})
	if app.state != ViewHelp {
		t.Fatalf("expected help view, got %v", app.state)
	}
	if !strings.Contains(app.View(), "jd help") {
		t.Errorf("help view missing title:\n%s", app.View())
	}

	app.Update(views.SwitchToBrowserMsg{})
	if app.state != ViewBrowser {
		t.Errorf("expected browser view, got %v", app.state)
	}
}

func TestApp_SelectQuits(t *testing.T) {
	app := NewApp(nil, "/jd", nil)

	_, cmd := app.Update(views.SelectMsg{Path: "/jd/10-19 Finance"})
	if app.Selected() != "/jd/10-19 Finance" {
		t.Errorf("Selected = %q", app.Selected())
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestApp_EditorFailureIsShown(t *testing.T) {
	app := NewApp(nil, "/jd", failingEditor{})

	_, cmd := app.Update(views.OpenEditorMsg{Path: "/jd/10-19 Finance"})
	if cmd == nil {
		t.Fatal("expected a command reporting the failure")
	}
	app.Update(cmd())

	if app.browser.Message != "no editor" || !app.browser.MessageErr {
		t.Errorf("message = %q (error %v)", app.browser.Message, app.browser.MessageErr)
	}
}

func TestApp_NoEditorIsIgnored(t *testing.T) {
	app := NewApp(nil, "/jd", nil)
	if _, cmd := app.Update(views.OpenEditorMsg{Path: "/jd"}); cmd != nil {
		t.Errorf("expected no command without an editor")
	}
}
