package actions

import (
	"fmt"
	"io"

	"github.com/reaandrew/sqlpick/core"
	"github.com/reaandrew/sqlpick/pickers"
	"github.com/reaandrew/sqlpick/tools"
)

// ExecuteAction hands the picked query to the external database client. The
// client is started and left alone; only a failure to spawn is reported.
type ExecuteAction struct {
	Picker core.Picker
	Runner core.ProcessRunner
	Client string
	Out    io.Writer
}

func (a ExecuteAction) Run(config core.Config) error {
	query, ok, err := pickers.SelectQuery(a.Picker, config.Queries)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.Out, noQuerySelected)
		return nil
	}

	client := a.Client
	if client == "" {
		client = tools.CsqlClient
	}
	args := tools.CsqlArgs(config.Username, config.DBName, query.SQL)

	fmt.Fprintf(a.Out, "Executing: %s\n", tools.CommandLine(client, args))
	process, err := a.Runner.Start(client, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query '%s': %w", query.Alias, err)
	}

	fmt.Fprintf(a.Out, "Output: %s\n", process)
	return nil
}
