package pickers

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultHeightPercent is the share of the terminal the picker may occupy.
const DefaultHeightPercent = 50

// FuzzyPicker is the interactive terminal picker. It renders inline on Output
// (stderr by default) and reads keys from the controlling TTY.
type FuzzyPicker struct {
	HeightPercent int
	Output        io.Writer
}

func NewFuzzyPicker(heightPercent int) *FuzzyPicker {
	return &FuzzyPicker{HeightPercent: heightPercent, Output: os.Stderr}
}

func (p *FuzzyPicker) Pick(lines []string) (string, bool, error) {
	output := p.Output
	if output == nil {
		output = os.Stderr
	}

	program := tea.NewProgram(
		newFuzzyModel(lines, p.HeightPercent),
		tea.WithOutput(output),
		tea.WithInputTTY(),
	)

	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run fuzzy picker: %w", err)
	}

	result, ok := final.(fuzzyModel)
	if !ok || !result.selected {
		return "", false, nil
	}
	return result.chosen, true, nil
}
