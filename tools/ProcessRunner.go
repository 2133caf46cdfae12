package tools

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/reaandrew/sqlpick/core"
	log "github.com/sirupsen/logrus"
)

// ExecProcessRunner starts executables directly with the parent's stdio.
// Without Wait the child is left running on its own and its exit status is
// never read.
type ExecProcessRunner struct {
	Wait bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecProcessRunner(wait bool) *ExecProcessRunner {
	return &ExecProcessRunner{
		Wait:   wait,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ExecProcessRunner) Start(name string, args ...string) (core.Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	log.Debugf("Starting %s with args %q", name, args)
	if err := cmd.Start(); err != nil {
		return core.Process{}, fmt.Errorf("failed to start %s: %w", name, err)
	}

	process := core.Process{Pid: cmd.Process.Pid, Name: name, Args: args}

	if !r.Wait {
		if err := cmd.Process.Release(); err != nil {
			log.Debugf("Failed to release process %d: %v", process.Pid, err)
		}
		return process, nil
	}

	if err := cmd.Wait(); err != nil {
		return process, fmt.Errorf("%s exited with error: %w", name, err)
	}
	return process, nil
}
