package utils

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// QueryResult is the tabular outcome of a single statement.
type QueryResult struct {
	Columns      []string
	Rows         [][]string
	RowsAffected int64
}

// OpenSQLiteDB opens an existing SQLite database file. Unlike sql.Open it
// refuses to create a new, empty database.
func OpenSQLiteDB(dbPath string) (*sql.DB, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access SQLite database %s: %w", dbPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path %s is a directory, not a file", dbPath)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database %s: %w", dbPath, err)
	}
	return db, nil
}

// ExecuteSQLQuery runs query and collects every row as strings. A statement
// without result columns reports the number of rows it changed instead.
func ExecuteSQLQuery(db *sql.DB, query string) (QueryResult, error) {
	ctx := context.Background()

	// changes() is per connection, so the statement and the count share one
	conn, err := db.Conn(ctx)
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to acquire SQLite connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to execute query '%s': %w", query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to retrieve columns for query '%s': %w", query, err)
	}

	if len(columns) == 0 {
		return drainStatement(ctx, conn, rows, query)
	}

	result := QueryResult{Columns: columns}
	for rows.Next() {
		columnValues := make([]interface{}, len(columns))
		columnPointers := make([]interface{}, len(columns))
		for i := range columnValues {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return QueryResult{}, fmt.Errorf("failed to scan row for query '%s': %w", query, err)
		}

		row := make([]string, len(columns))
		for i, value := range columnValues {
			row[i] = formatValue(value)
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return QueryResult{}, fmt.Errorf("row iteration error for query '%s': %w", query, err)
	}

	log.Debugf("Query returned %d rows", len(result.Rows))
	return result, nil
}

// drainStatement steps a column-less statement to completion and reads how
// many rows it changed.
func drainStatement(ctx context.Context, conn *sql.Conn, rows *sql.Rows, query string) (QueryResult, error) {
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return QueryResult{}, fmt.Errorf("failed to execute statement '%s': %w", query, err)
	}
	if err := rows.Close(); err != nil {
		return QueryResult{}, fmt.Errorf("failed to finish statement '%s': %w", query, err)
	}

	var affected int64
	if err := conn.QueryRowContext(ctx, "SELECT changes()").Scan(&affected); err != nil {
		return QueryResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return QueryResult{RowsAffected: affected}, nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
