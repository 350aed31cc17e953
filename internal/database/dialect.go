package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect abstracts the differences between the supported database
// engines so repositories can be written once with ? placeholders.
type Dialect interface {
	// DriverName returns the name registered with database/sql
	DriverName() string

	// DSN builds the data source name from the connection settings
	DSN(settings ConnSettings) string

	// RewriteQuery converts ? placeholders where the engine needs
	// another syntax ($1 for postgres)
	RewriteQuery(query string) string

	// SupportsLastInsertID reports whether the driver implements
	// LastInsertId; postgres needs RETURNING instead
	SupportsLastInsertID() bool

	// Configure applies pool and engine settings after connecting
	Configure(db *sql.DB) error

	// MigrationsSubdir names the per-engine migrations directory
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL creating the
	// migration tracking table
	CreateMigrationsTableQuery() string
}

// ConnSettings holds engine-specific connection settings
type ConnSettings struct {
	// Path is the database file for SQLite
	Path string

	// URL is the connection string for PostgreSQL and MySQL
	URL string
}

var placeholderPattern = regexp.MustCompile(`\?`)

// numberPlaceholders rewrites ? placeholders to $1, $2, ...
func numberPlaceholders(query string) string {
	n := 0
	return placeholderPattern.ReplaceAllStringFunc(query, func(string) string {
		n++
		return "$" + strconv.Itoa(n)
	})
}
