package actions

import (
	"fmt"
	"io"

	"github.com/reaandrew/sqlpick/core"
	"github.com/reaandrew/sqlpick/pickers"
)

const noQuerySelected = "No query selected."

// PrintAction lets the user pick a query and prints it.
type PrintAction struct {
	Picker core.Picker
	Out    io.Writer
}

func (a PrintAction) Run(config core.Config) error {
	query, ok, err := pickers.SelectQuery(a.Picker, config.Queries)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.Out, noQuerySelected)
		return nil
	}

	fmt.Fprintln(a.Out, "Selected Query:")
	printQuery(a.Out, query)
	return nil
}

func printQuery(out io.Writer, query core.Query) {
	fmt.Fprintf(out, "Alias: %s\n", query.Alias)
	fmt.Fprintf(out, "SQL: %s\n", query.SQL)
}
