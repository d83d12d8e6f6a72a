package migrate

import (
	"fmt"
	"strings"
)

func init() {
	providers["oracle"] = &oracleProvider{}
}

type oracleProvider struct{}

func (p *oracleProvider) driverName() string {
	return "oracle"
}

func (p *oracleProvider) dsn(settings *Settings) (string, error) {
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
		port = 1521
	}

	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s", settings.User, settings.Password, host, port, settings.Database), nil
}

// hasTableQuery checks user_tables, oracle keeps object names uppercased
func (p *oracleProvider) hasTableQuery() string {
	return "SELECT table_name FROM user_tables WHERE table_name = UPPER(?)"
}

// createHistoryTableStatements bootstraps the table together with the
// sequence and trigger assigning surrogate ids on insert
func (p *oracleProvider) createHistoryTableStatements(table string) []string {
	return []string{
		fmt.Sprintf(
			"CREATE TABLE %s (id NUMBER PRIMARY KEY, title VARCHAR2(255) NOT NULL UNIQUE, created_at VARCHAR2(14) NOT NULL, applied_at VARCHAR2(14) NOT NULL)",
			table),
		fmt.Sprintf("CREATE SEQUENCE %s_seq START WITH 1 INCREMENT BY 1", table),
		// the PL/SQL block must be terminated with END; or oracle
		// stores the trigger with compilation errors and every
		// subsequent insert fails
		fmt.Sprintf(
			"CREATE OR REPLACE TRIGGER %s_trg BEFORE INSERT ON %s FOR EACH ROW BEGIN SELECT %s_seq.NEXTVAL INTO :new.id FROM dual; END;",
			table, table, table),
	}
}

func (p *oracleProvider) setPlaceholders(s string) string {
	counter := 0
	for strings.Contains(s, "?") {
		counter++
		s = strings.Replace(s, "?", fmt.Sprintf(":%d", counter), 1)
	}
	return s
}
