package pickers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const (
	defaultListHeight = 10
	// prompt line plus the match counter
	chromeHeight = 2
)

type pickerStyles struct {
	cursor   lipgloss.Style
	selected lipgloss.Style
	match    lipgloss.Style
	count    lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true),
		match:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		count:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// fuzzyModel is the bubbletea model behind FuzzyPicker.
type fuzzyModel struct {
	lines   []string
	input   textinput.Model
	matches []fuzzy.Match
	cursor  int
	offset  int

	heightPercent int
	listHeight    int
	width         int

	chosen   string
	selected bool
	aborted  bool

	styles pickerStyles
}

func newFuzzyModel(lines []string, heightPercent int) fuzzyModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "filter queries"
	input.Focus()

	m := fuzzyModel{
		lines:         lines,
		input:         input,
		heightPercent: heightPercent,
		listHeight:    defaultListHeight,
		styles:        defaultPickerStyles(),
	}
	m.refilter()
	return m
}

func (m fuzzyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m fuzzyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.listHeight = listHeight(msg.Height, m.heightPercent)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.matches) > 0 {
				m.chosen = m.matches[m.cursor].Str
				m.selected = true
			}
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP, tea.KeyCtrlK:
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyCtrlJ:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.refilter()
	}
	return m, cmd
}

func (m fuzzyModel) View() string {
	if m.selected || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.count.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.lines))))

	end := m.offset + m.listHeight
	if end > len(m.matches) {
		end = len(m.matches)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString("\n")
		line := m.renderMatch(m.matches[i])
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "))
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (m *fuzzyModel) refilter() {
	m.matches = filterLines(m.input.Value(), m.lines)
	m.cursor = 0
	m.offset = 0
}

// scroll keeps the cursor inside the visible window.
func (m *fuzzyModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.listHeight {
		m.offset = m.cursor - m.listHeight + 1
	}
}

func (m fuzzyModel) renderMatch(match fuzzy.Match) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	visible := 0
	for i, r := range match.Str {
		if m.width > 0 && visible >= m.width-3 {
			break
		}
		if r == '\n' || r == '\t' {
			r = ' '
		}
		if matched[i] {
			b.WriteString(m.styles.match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
		visible++
	}
	return b.String()
}

// filterLines returns every line in its original order for an empty pattern,
// otherwise the fuzzy matches best first.
func filterLines(pattern string, lines []string) []fuzzy.Match {
	if pattern == "" {
		matches := make([]fuzzy.Match, 0, len(lines))
		for i, line := range lines {
			matches = append(matches, fuzzy.Match{Str: line, Index: i})
		}
		return matches
	}
	return fuzzy.Find(pattern, lines)
}

func listHeight(terminalHeight, percent int) int {
	if percent <= 0 || percent > 100 {
		percent = 100
	}
	rows := terminalHeight*percent/100 - chromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}
