package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jd/internal/adapters/tui/styles"
	"jd/internal/application/commands"
	"jd/internal/domain"
	"jd/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Copy   key.Binding
	Open   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
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

// Rows taken by the title, filter line, message and help line
const chromeHeight = 8

// BrowserModel is the model for the tree browser view
type BrowserModel struct {
	ViewState

	store ports.IndexStore
	root  string
	model *domain.Model
	tree  []*Node
	rows  []*Node
	pager *Paginator

	filter    textinput.Model
	filtering bool

	copy func(string) error

	// Strict refuses to show an index with diagnostics
	Strict bool
}

// NewBrowserModel creates a browser over the index stored at root
func NewBrowserModel(store ports.IndexStore, root string) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "number or label"
	input.Prompt = "/ "

	return &BrowserModel{
		store:  store,
		root:   root,
		pager:  NewPaginator(20),
		filter: input,
		copy:   clipboard.WriteAll,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	model, err := m.store.Load(m.root, ports.LoadOptions{Strict: m.Strict})
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{model}
}

type treeLoadedMsg struct {
	model *domain.Model
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.model = msg.model
		m.tree = BuildTree(msg.model)
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateTree(msg)
	}

	return m, nil
}

func (m *BrowserModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, BrowserKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, BrowserKeys.Left):
		if node := m.selectedNode(); node != nil {
			if node.Expanded {
				node.Expanded = false
				m.refreshRows()
			} else if node.Parent != nil {
				m.moveTo(node.Parent)
			}
		}

	case key.Matches(msg, BrowserKeys.Right):
		if node := m.selectedNode(); node != nil && node.HasChildren() && !node.Expanded {
			node.Expanded = true
			m.refreshRows()
		}

	case key.Matches(msg, BrowserKeys.Select):
		return m, m.selectCmd()

	case key.Matches(msg, BrowserKeys.Copy):
		m.copyPath()

	case key.Matches(msg, BrowserKeys.Open):
		if node := m.selectedNode(); node != nil {
			path := m.model.Abs(node.Entry)
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}

	case key.Matches(msg, BrowserKeys.Filter):
		m.filtering = true
		m.filter.SetValue("")
		return m, m.filter.Focus()

	case key.Matches(msg, BrowserKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshRows()
		return m, nil
	case tea.KeyEnter:
		return m, m.selectCmd()
	case tea.KeyUp:
		m.pager.CursorUp()
		return m, nil
	case tea.KeyDown:
		m.pager.CursorDown()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.pager.SetCursor(0)
	m.refreshRows()
	return m, cmd
}

func (m *BrowserModel) selectCmd() tea.Cmd {
	node := m.selectedNode()
	if node == nil {
		return nil
	}
	path := m.model.Abs(node.Entry)
	return func() tea.Msg { return SelectMsg{Path: path} }
}

func (m *BrowserModel) copyPath() {
	node := m.selectedNode()
	if node == nil {
		return
	}
	path := m.model.Abs(node.Entry)
	if err := m.copy(path); err != nil {
		m.SetMessage(fmt.Sprintf("failed to copy: %v", err), true)
		return
	}
	m.SetMessage("Copied "+path, false)
}

func (m *BrowserModel) selectedNode() *Node {
	if c := m.pager.Cursor(); c >= 0 && c < len(m.rows) {
		return m.rows[c]
	}
	return nil
}

func (m *BrowserModel) moveTo(target *Node) {
	for i, n := range m.rows {
		if n == target {
			m.pager.SetCursor(i)
			return
		}
	}
}

// refreshRows recomputes the visible rows: the expanded tree, or every
// entry matching the filter, best match first
func (m *BrowserModel) refreshRows() {
	query := strings.TrimSpace(m.filter.Value())
	if !m.filtering || query == "" {
		m.rows = Flatten(m.tree)
		m.pager.SetTotal(len(m.rows))
		return
	}

	type scored struct {
		node  *Node
		score int
	}
	var matches []scored
	for _, n := range All(m.tree) {
		s := max(commands.FuzzyScore(n.Entry.Number.String(), query), commands.FuzzyScore(n.Entry.Label, query))
		if s > 0 {
			matches = append(matches, scored{n, s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	m.rows = make([]*Node, len(matches))
	for i, s := range matches {
		m.rows[i] = s.node
	}
	m.pager.SetTotal(len(m.rows))
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - chromeHeight)
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()
	v.Title("jd")
	v.Subtitle(m.root)

	if m.model == nil {
		if m.Message != "" {
			return v.Message(m.Message, true).Help(BrowserKeys.Quit).String()
		}
		return v.Line("Loading...").String()
	}

	if m.filtering {
		v.Line(m.filter.View())
	}

	if len(m.rows) == 0 {
		if m.filtering {
			v.Muted("No matches")
		} else {
			v.Muted("The index is empty. Run \"jd index\" in your tree.")
		}
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderNode(m.rows[i], i == m.pager.Cursor()))
	}

	v.Message(m.Message, m.MessageErr)
	if m.filtering {
		return v.Help(BrowserKeys.Select, BrowserKeys.Clear).String()
	}
	return v.Help(BrowserKeys.Select, BrowserKeys.Copy, BrowserKeys.Open, BrowserKeys.Filter, BrowserKeys.Help, BrowserKeys.Quit).String()
}

func (m *BrowserModel) renderNode(node *Node, selected bool) string {
	depth := node.Depth()
	if m.filtering {
		depth = 0
	}
	indent := strings.Repeat("  ", depth)

	var prefix string
	switch {
	case !node.HasChildren():
		prefix = styles.TreeLeaf
	case node.Expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := node.Entry.Name()
	if node.Orphan {
		text += "  (orphan)"
	}
	if m.Width > 0 {
		// App padding is 2 cells each side
		text = Truncate(text, m.Width-4-len(indent)-2)
	}

	if selected {
		return indent + styles.TreeBranch.Render(prefix) + styles.NodeSelected.Render(text)
	}
	return indent + styles.TreeBranch.Render(prefix) + nodeStyle(node).Render(text)
}

func nodeStyle(node *Node) lipgloss.Style {
	switch {
	case node.Orphan:
		return styles.NodeOrphan
	case node.Level == domain.LevelArea:
		return styles.NodeArea
	case node.Level == domain.LevelCategory:
		return styles.NodeCategory
	default:
		return styles.NodeID
	}
}
