package migrate

import "fmt"

func init() {
	providers["mysql"] = &mysqlProvider{}
}

type mysqlProvider struct{}

func (p *mysqlProvider) driverName() string {
	return "mysql"
}

func (p *mysqlProvider) dsn(settings *Settings) (string, error) {
	if settings.Database == "" {
		return "", errDBNameNotProvided
	}
	if settings.User == "" {
		return "", errUserNotProvided
	}

	host := settings.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := settings.Port
	if port == 0 {
		port = 3306
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", settings.User, settings.Password, host, port, settings.Database), nil
}

func (p *mysqlProvider) hasTableQuery() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_name = ?"
}

func (p *mysqlProvider) createHistoryTableStatements(table string) []string {
	return []string{
		fmt.Sprintf(
			"CREATE TABLE %s (id INT AUTO_INCREMENT PRIMARY KEY, title VARCHAR(255) NOT NULL UNIQUE, created_at VARCHAR(14) NOT NULL, applied_at VARCHAR(14) NOT NULL)",
			table),
	}
}
