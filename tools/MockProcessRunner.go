package tools

import "github.com/reaandrew/sqlpick/core"

// MockProcessRunner records what would have been started.
type MockProcessRunner struct {
	Pid   int
	Err   error
	Calls []core.Process
}

func (m *MockProcessRunner) Start(name string, args ...string) (core.Process, error) {
	process := core.Process{Pid: m.Pid, Name: name, Args: args}
	m.Calls = append(m.Calls, process)
	if m.Err != nil {
		return core.Process{}, m.Err
	}
	return process, nil
}
