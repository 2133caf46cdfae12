package core

// Picker lets the user choose one line out of many.
type Picker interface {
	// Pick returns the chosen line. ok is false when the user aborted or nothing
	// was selected; err is only set when the picker itself failed.
	Pick(lines []string) (line string, ok bool, err error)
}
