package pickers

import (
	"fmt"
	"strings"

	"github.com/reaandrew/sqlpick/core"
	log "github.com/sirupsen/logrus"
)

// FormatLine renders a query as a single picker line.
func FormatLine(query core.Query) string {
	return fmt.Sprintf("%s%s %s", query.Alias, core.QueryDelimiter, query.SQL)
}

func RenderLines(queries []core.Query) []string {
	lines := make([]string, 0, len(queries))
	for _, query := range queries {
		lines = append(lines, FormatLine(query))
	}
	return lines
}

// ParseAlias returns the text before the first delimiter. An alias that itself
// contains the delimiter is cut short here and will not be found.
func ParseAlias(line string) string {
	alias, _, _ := strings.Cut(line, core.QueryDelimiter)
	return alias
}

func FindQuery(queries []core.Query, alias string) (core.Query, bool) {
	for _, query := range queries {
		if query.Alias == alias {
			return query, true
		}
	}
	return core.Query{}, false
}

// SelectQuery asks the picker for a line and maps it back to its query.
func SelectQuery(picker core.Picker, queries []core.Query) (core.Query, bool, error) {
	line, ok, err := picker.Pick(RenderLines(queries))
	if err != nil {
		return core.Query{}, false, fmt.Errorf("query picker failed: %w", err)
	}
	if !ok {
		log.Debug("Picker returned no selection")
		return core.Query{}, false, nil
	}

	alias := ParseAlias(line)
	query, found := FindQuery(queries, alias)
	if !found {
		log.Debugf("No query with alias %q for line %q", alias, line)
	}
	return query, found, nil
}
