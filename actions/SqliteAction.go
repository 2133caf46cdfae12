package actions

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/reaandrew/sqlpick/core"
	"github.com/reaandrew/sqlpick/pickers"
	"github.com/reaandrew/sqlpick/utils"
)

// SqliteAction runs the picked query against a local SQLite file and prints
// the result as a table.
type SqliteAction struct {
	Picker core.Picker
	DBPath string
	Out    io.Writer
}

func (a SqliteAction) Run(config core.Config) error {
	query, ok, err := pickers.SelectQuery(a.Picker, config.Queries)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.Out, noQuerySelected)
		return nil
	}

	db, err := utils.OpenSQLiteDB(a.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(a.Out, "Executing: %s\n", query.SQL)
	result, err := utils.ExecuteSQLQuery(db, query.SQL)
	if err != nil {
		return err
	}

	if len(result.Columns) == 0 {
		fmt.Fprintf(a.Out, "Rows affected: %d\n", result.RowsAffected)
		return nil
	}

	table := tablewriter.NewWriter(a.Out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(result.Columns)
	table.AppendBulk(result.Rows)
	table.Render()
	return nil
}
