package migrate

import (
	"fmt"
	"path/filepath"
)

func init() {
	providers["sqlite"] = &sqliteProvider{}
}

type sqliteProvider struct{}

func (p *sqliteProvider) driverName() string {
	return "sqlite3"
}

func (p *sqliteProvider) dsn(settings *Settings) (string, error) {
	if settings.Database == "" {
		return "", errDBNameNotProvided
	}

	if filepath.IsAbs(settings.Database) {
		return settings.Database, nil
	}
	return "./" + settings.Database, nil
}

func (p *sqliteProvider) hasTableQuery() string {
	return "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?"
}

func (p *sqliteProvider) createHistoryTableStatements(table string) []string {
	return []string{
		fmt.Sprintf(
			"CREATE TABLE %s (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL UNIQUE, created_at TEXT NOT NULL, applied_at TEXT NOT NULL)",
			table),
	}
}
