package actions

import (
	"fmt"
	"io"

	"github.com/reaandrew/sqlpick/core"
)

const (
	PrintMode  = "print"
	ListMode   = "list"
	ExecMode   = "exec"
	SqliteMode = "sqlite"
)

// Options carries the collaborators an action may need.
type Options struct {
	Picker core.Picker
	Runner core.ProcessRunner
	Client string
	DBPath string
	Out    io.Writer
}

func CreateAction(mode string, opts Options) (core.Action, error) {
	switch mode {
	case PrintMode:
		return PrintAction{Picker: opts.Picker, Out: opts.Out}, nil
	case ListMode:
		return ListAction{Out: opts.Out}, nil
	case ExecMode:
		return ExecuteAction{Picker: opts.Picker, Runner: opts.Runner, Client: opts.Client, Out: opts.Out}, nil
	case SqliteMode:
		if opts.DBPath == "" {
			return nil, fmt.Errorf("sqlite mode requires a database path")
		}
		return SqliteAction{Picker: opts.Picker, DBPath: opts.DBPath, Out: opts.Out}, nil
	}

	return nil, fmt.Errorf("unknown action: %s", mode)
}
