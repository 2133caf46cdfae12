package core

import "strings"

// QueryDelimiter separates the alias from the SQL text in a rendered picker line.
const QueryDelimiter = ":"

// Query is a single named SQL statement loaded from the config file.
type Query struct {
	Alias string `yaml:"alias"`
	SQL   string `yaml:"sql"`
}

// HasReservedAlias reports whether the alias contains the delimiter, which makes
// the alias unrecoverable from a rendered line.
func (q Query) HasReservedAlias() bool {
	return strings.Contains(q.Alias, QueryDelimiter)
}
