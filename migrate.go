package migrate

// Direction denotes whether a migration is being applied or reverted
type Direction int

const (
	directionError = Direction(iota)
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	var s string
	switch d {
	case DirectionUp:
		s = "up"
	case DirectionDown:
		s = "down"
	}
	return s
}

// TimestampFormat is the format of the timestamp prefix of migration titles
const TimestampFormat = "20060102150405"

// PrintTimestampFormat is the format used to show timestamps to humans
const PrintTimestampFormat = "2006.01.02 15:04:05"

// DownTargetAll is the down target meaning "revert every applied migration"
const DownTargetAll = "all"

// Progress is the notification sent right before a migration is executed
type Progress struct {
	Migration *Migration
	Direction Direction
}

// Settings used by NewMigrator to build a Migrator
type Settings struct {
	// Engine is the database engine name (oracle, postgres, mysql or sqlite)
	Engine string
	// Database is the database name (the service name for oracle,
	// the file path for sqlite)
	Database string
	User     string
	Password string
	Host     string
	Port     int
	// MigrationsDir is the directory holding migration files,
	// default is migrations
	MigrationsDir string
	// HistoryTable is the table recording applied migrations,
	// default is migrations_history
	HistoryTable string
	// AllowMissingDowns makes migrations without a down file
	// revertible as a no-op instead of failing the load
	AllowMissingDowns bool
	// ProgressCh, if not nil, receives a notification before
	// each migration is executed
	ProgressCh chan Progress
}
