package migrate

import (
	"fmt"
	"strings"
)

func init() {
	providers["postgres"] = &postgresProvider{}
}

type postgresProvider struct{}

func (p *postgresProvider) driverName() string {
	return "postgres"
}

func (p *postgresProvider) dsn(settings *Settings) (string, error) {
	if settings.Database == "" {
		return "", errDBNameNotProvided
	}
	if settings.User == "" {
		return "", errUserNotProvided
	}

	kvs := []string{"dbname=" + settings.Database, "user=" + settings.User}
	if settings.Password != "" {
		kvs = append(kvs, "password="+settings.Password)
	}
	if settings.Host != "" {
		kvs = append(kvs, "host="+settings.Host)
	}
	if settings.Port != 0 {
		kvs = append(kvs, fmt.Sprintf("port=%d", settings.Port))
	}
	kvs = append(kvs, "sslmode=disable")

	return strings.Join(kvs, " "), nil
}

func (p *postgresProvider) hasTableQuery() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_name = ?"
}

func (p *postgresProvider) createHistoryTableStatements(table string) []string {
	return []string{
		fmt.Sprintf(
			"CREATE TABLE %s (id SERIAL PRIMARY KEY, title VARCHAR(255) NOT NULL UNIQUE, created_at VARCHAR(14) NOT NULL, applied_at VARCHAR(14) NOT NULL)",
			table),
	}
}

func (p *postgresProvider) setPlaceholders(s string) string {
	counter := 0
	for strings.Contains(s, "?") {
		counter++
		s = strings.Replace(s, "?", fmt.Sprintf("$%d", counter), 1)
	}
	return s
}
