package migrate

import "github.com/pkg/errors"

// providers is the map where keys are database engine names and values are
// implementations of the provider interface
var providers = make(map[string]provider)

// provider is the interface for database engine specific stuff
type provider interface {
	// driverName returns the driver name used by the database/sql lib
	// to connect to the database
	driverName() string
	// dsn returns the database connection string
	dsn(settings *Settings) (string, error)
	// hasTableQuery returns the SQL query to check if the table used
	// to store the migrations history exists
	hasTableQuery() string
	// createHistoryTableStatements returns the ordered statements that
	// bootstrap the history table, including whatever the engine needs
	// to assign surrogate ids on insert
	createHistoryTableStatements(table string) []string
}

// placeholdersProvider is the interface to set database specific variables
// placeholders in a SQL string
type placeholdersProvider interface {
	setPlaceholders(string) string
}

var (
	errDBNameNotProvided = errors.New("database name is not provided")
	errUserNotProvided   = errors.New("user is not provided")
)
