package core

// Config holds everything read from the query file. It is loaded once at startup
// and never written back.
type Config struct {
	Username string
	DBName   string
	Queries  []Query
}
