package tools

import (
	"github.com/kballard/go-shellquote"
)

// CsqlClient is the database client launched by the exec action.
const CsqlClient = "csql"

// CsqlArgs builds the client argument list. The SQL is passed as one argument
// exactly as it appears in the config.
func CsqlArgs(username, dbname, sql string) []string {
	return []string{
		"-u", username,
		dbname,
		"-S",
		"-c", sql,
	}
}

// CommandLine renders a command for display. The process itself is never
// started through a shell.
func CommandLine(name string, args []string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}
