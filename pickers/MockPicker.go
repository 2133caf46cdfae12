package pickers

import (
	"strings"

	"github.com/reaandrew/sqlpick/core"
)

// MockPicker is a core.Picker that answers without a terminal. Alias selects
// the first line starting with that alias; Line is returned verbatim otherwise.
type MockPicker struct {
	Alias string
	Line  string
	Abort bool
	Err   error

	Called bool
	Lines  []string
}

func (m *MockPicker) Pick(lines []string) (string, bool, error) {
	m.Called = true
	m.Lines = lines
	if m.Err != nil {
		return "", false, m.Err
	}
	if m.Abort {
		return "", false, nil
	}
	if m.Alias == "" {
		return m.Line, m.Line != "", nil
	}
	for _, line := range lines {
		if strings.HasPrefix(line, m.Alias+core.QueryDelimiter) {
			return line, true, nil
		}
	}
	return "", false, nil
}
