package pickers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLines = []string{
	"users: SELECT * FROM users",
	"orders: SELECT * FROM orders",
	"order totals: SELECT sum(total) FROM orders",
}

func update(t *testing.T, m fuzzyModel, msg tea.Msg) (fuzzyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(fuzzyModel)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m fuzzyModel, text string) fuzzyModel {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFuzzyModel_InitialListKeepsOrder(t *testing.T) {
	m := newFuzzyModel(sampleLines, DefaultHeightPercent)

	require.Len(t, m.matches, 3)
	for i, match := range m.matches {
		assert.Equal(t, sampleLines[i], match.Str)
	}
}

func TestFuzzyModel_EnterSelectsHighlighted(t *testing.T) {
	m := newFuzzyModel(sampleLines, DefaultHeightPercent)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.selected)
	assert.Equal(t, sampleLines[1], m.chosen)
}

func TestFuzzyModel_CursorStaysInBounds(t *testing.T) {
	m := newFuzzyModel(sampleLines, DefaultHeightPercent)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	}
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, 1, m.cursor)
}

func TestFuzzyModel_TypingFilters(t *testing.T) {
	m := newFuzzyModel(sampleLines, DefaultHeightPercent)

	m = typeText(t, m, "totals")
	assert.Equal(t, "totals", m.input.Value())
	require.NotEmpty(t, m.matches)
	assert.Equal(t, "order totals: SELECT sum(total) FROM orders", m.matches[0].Str)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.selected)
	assert.Equal(t, sampleLines[2], m.chosen)
}

func TestFuzzyModel_NoMatchEnterSelectsNothing(t *testing.T) {
	m := newFuzzyModel(sampleLines, DefaultHeightPercent)

	m = typeText(t, m, "qqqqqq")
	assert.Empty(t, m.matches)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.False(t, m.selected)
	assert.Empty(t, m.chosen)
}

func TestFuzzyModel_EmptyList(t *testing.T) {
	m := newFuzzyModel(nil, DefaultHeightPercent)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.False(t, m.selected)
}

func TestFuzzyModel_Abort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newFuzzyModel(sampleLines, DefaultHeightPercent)

		m, cmd := update(t, m, tea.KeyMsg{Type: key})
		assert.True(t, isQuit(cmd))
		assert.True(t, m.aborted)
		assert.False(t, m.selected)
		assert.Empty(t, m.View())
	}
}

func TestFuzzyModel_WindowSizeBoundsHeight(t *testing.T) {
	m := newFuzzyModel(sampleLines, 50)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 18, m.listHeight)
}

func TestFuzzyModel_ScrollFollowsCursor(t *testing.T) {
	m := newFuzzyModel(sampleLines, 50)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})
	require.Equal(t, 1, m.listHeight)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.offset)

	view := m.View()
	assert.Contains(t, view, "3/3")
	assert.Contains(t, view, "order totals")
	assert.NotContains(t, view, "users:")
}

func TestListHeight(t *testing.T) {
	tests := []struct {
		height, percent, expected int
	}{
		{40, 50, 18},
		{40, 100, 38},
		{40, 0, 38},
		{3, 50, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, listHeight(tt.height, tt.percent), "%d%% of %d", tt.percent, tt.height)
	}
}

func TestFilterLines_EmptyPatternReturnsAll(t *testing.T) {
	matches := filterLines("", sampleLines)
	require.Len(t, matches, len(sampleLines))
	for i, match := range matches {
		assert.Equal(t, i, match.Index)
	}
}
