package core

import (
	"fmt"
	"strings"
)

// Process is the handle of a spawned external process.
type Process struct {
	Pid  int
	Name string
	Args []string
}

func (p Process) String() string {
	return fmt.Sprintf("Process{pid: %d, cmd: %s %s}", p.Pid, p.Name, strings.Join(p.Args, " "))
}

// ProcessRunner launches external executables.
type ProcessRunner interface {
	Start(name string, args ...string) (Process, error)
}
