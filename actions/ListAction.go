package actions

import (
	"fmt"
	"io"

	"github.com/reaandrew/sqlpick/core"
)

// ListAction dumps every configured query without asking.
type ListAction struct {
	Out io.Writer
}

func (a ListAction) Run(config core.Config) error {
	for _, query := range config.Queries {
		printQuery(a.Out, query)
		fmt.Fprintln(a.Out)
	}
	return nil
}
