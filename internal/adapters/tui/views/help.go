package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jd/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

type helpSection struct {
	title string
	rows  [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"j / k / ↑ / ↓", "Move up/down"},
		{"h / ←", "Collapse / go to parent"},
		{"l / →", "Expand"},
	}},
	{"Actions", [][2]string{
		{"Enter", "Quit and print the path (for cd)"},
		{"y", "Copy the path to the clipboard"},
		{"o", "Open in your editor"},
		{"/", "Filter by number or label"},
	}},
	{"General", [][2]string{
		{"?", "Toggle help"},
		{"q / Ctrl+C", "Quit"},
	}},
}

// Example folder names, one per level
var helpLevels = []string{
	"Area     : 10-19 Finance",
	"Category : 11 Taxes",
	"ID       : 11.04 Receipts",
}

func (m *HelpModel) View() string {
	v := NewViewBuilder().Title("jd help").Line("")

	for _, sec := range helpSections {
		v.Line(styles.InputLabel.Render(sec.title))
		for _, r := range sec.rows {
			v.Line("  " + styles.HelpKey.Render(padRight(r[0], 20)) + styles.HelpDesc.Render(r[1]))
		}
		v.Line("")
	}

	v.Line(styles.InputLabel.Render("Johnny Decimal"))
	for _, l := range helpLevels {
		v.Muted("  " + l)
	}

	return v.Help(HelpKeys.Close).String()
}

func padRight(s string, length int) string {
	if w := Width(s); w < length {
		return s + strings.Repeat(" ", length-w)
	}
	return s
}
