package prompt

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labels = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"}

func press(t *testing.T, m selectModel, msgs ...tea.KeyMsg) (selectModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(selectModel)
		require.True(t, ok)
	}
	return m, cmd
}

// runCmd executes cmd, flattening batches, and returns the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// applyFilter feeds the list's asynchronous filter results back into m.
func applyFilter(t *testing.T, m selectModel, cmd tea.Cmd) selectModel {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(list.FilterMatchesMsg); !ok {
			continue
		}
		next, _ := m.Update(msg)
		m = next.(selectModel)
	}
	return m
}

func runes(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

func TestSelectTypingNarrowsList(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	m, cmd := press(t, m, runes("ref")...)
	require.Equal(t, list.Filtering, m.list.FilterState())
	assert.Equal(t, "ref", m.list.FilterValue())

	m = applyFilter(t, m, cmd)
	visible := m.list.VisibleItems()
	require.Len(t, visible, 1)
	assert.Equal(t, "refactor", visible[0].FilterValue())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, list.FilterApplied, m.list.FilterState())
	assert.False(t, m.done())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 4, m.choice)
}

func TestSelectSlashStillStartsFilter(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	m, _ = press(t, m, runes("/do")...)
	require.Equal(t, list.Filtering, m.list.FilterState())
	assert.Equal(t, "do", m.list.FilterValue())
}

func TestSelectEnterChoosesHighlighted(t *testing.T) {
	m := newSelectModel("type", labels, 2)
	assert.Equal(t, 2, m.list.Index())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.choice)
	assert.False(t, m.aborted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestSelectOutOfRangeCursorStartsAtTop(t *testing.T) {
	for _, cursor := range []int{-1, 0, 7, 100} {
		m := newSelectModel("type", labels, cursor)
		assert.Equal(t, 0, m.list.Index(), "cursor %d", cursor)
	}
}

func TestSelectMovesCursor(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, 1, m.choice)
}

func TestSelectCtrlCAborts(t *testing.T) {
	m := newSelectModel("type", labels, 3)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.aborted)
	assert.Equal(t, -1, m.choice)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSelectLetterKeysFilterInsteadOfQuitting(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	m, _ = press(t, m, runes("q")...)
	assert.False(t, m.done())
	assert.Equal(t, list.Filtering, m.list.FilterState())
	assert.Equal(t, "q", m.list.FilterValue())
}

func TestSelectEnterWhileFilteringDoesNotChoose(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.Equal(t, list.Filtering, m.list.FilterState())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, -1, m.choice)
	assert.False(t, m.done())
}

func TestSelectOffersOnlyGivenItems(t *testing.T) {
	m := newSelectModel("type", labels, 0)

	items := m.list.Items()
	require.Len(t, items, len(labels))
	for i, it := range items {
		o, ok := it.(option)
		require.True(t, ok)
		assert.Equal(t, labels[i], o.label)
		assert.Equal(t, i, o.index)
		assert.Equal(t, labels[i], o.FilterValue())
	}
	assert.Contains(t, m.View(), "type")
}
