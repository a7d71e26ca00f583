package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type option struct {
	label string
	index int
}

func (o option) Title() string       { return o.label }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return o.label }

// selectModel is a single-choice list. Typing narrows it with the list's
// fuzzy filter, so navigation is bound to non-printable keys only.
type selectModel struct {
	list    list.Model
	choice  int
	aborted bool
}

func newSelectModel(title string, items []string, cursor int) selectModel {
	entries := make([]list.Item, len(items))
	for i, label := range items {
		entries[i] = option{label: label, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(entries, delegate, 40, len(items)+10)
	l.Title = title
	l.Styles.Title = typeStyle
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up"))
	l.KeyMap.CursorDown = key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "prev page"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "next page"))
	l.KeyMap.GoToStart = key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "go to start"))
	l.KeyMap.GoToEnd = key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "go to end"))
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("/"), key.WithHelp("type", "filter"))
	if cursor > 0 && cursor < len(items) {
		l.Select(cursor)
	}

	return selectModel{list: l, choice: -1}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break
			}
			if o, ok := m.list.SelectedItem().(option); ok {
				m.choice = o.index
				return m, tea.Quit
			}
			// the filter matched nothing
			return m, nil
		case tea.KeyRunes:
			if m.list.FilterState() == list.Unfiltered && !key.Matches(msg, m.list.KeyMap.Filter) {
				return m.startFilter(msg)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// startFilter opens the filter prompt and feeds it the typed keys.
func (m selectModel) startFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var open, typed tea.Cmd
	m.list, open = m.list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m.list, typed = m.list.Update(msg)
	return m, tea.Batch(open, typed)
}

func (m selectModel) View() string {
	if m.done() {
		return ""
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(m.list.View())
}

func (m selectModel) done() bool {
	return m.aborted || m.choice >= 0
}
