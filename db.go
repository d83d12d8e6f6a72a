package migrate

import (
	"database/sql"

	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sijms/go-ora/v2"
)

type dbWrapper struct {
	settings *Settings
	db       *sql.DB
	provider
	placeholdersProvider
}

func newDBWrapper(settings *Settings, provider provider) *dbWrapper {
	w := &dbWrapper{
		settings: settings,
		provider: provider,
	}
	if pp, ok := w.provider.(placeholdersProvider); ok {
		w.placeholdersProvider = pp
	}

	return w
}

func (w *dbWrapper) open() error {
	dsn, err := w.provider.dsn(w.settings)
	if err != nil {
		return err
	}

	w.db, err = sql.Open(w.provider.driverName(), dsn)
	if err != nil {
		return errors.Wrap(err, "can't open database")
	}

	return nil
}

func (w *dbWrapper) close() error {
	err := w.db.Close()
	if err != nil {
		return errors.Wrap(err, "can't close db")
	}
	return nil
}

func (w *dbWrapper) setPlaceholders(s string) string {
	if w.placeholdersProvider == nil {
		return s
	}
	return w.placeholdersProvider.setPlaceholders(s)
}

func (w *dbWrapper) hasTable(table string) (bool, error) {
	var name string
	err := w.db.QueryRow(w.setPlaceholders(w.provider.hasTableQuery()), table).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "can't check if table %s exists", table)
	}
	return true, nil
}

// RunInTransaction executes statements in order inside one transaction,
// committing if all succeed and rolling back on the first failure.
// Statements after the first failing one are not attempted.
func (w *dbWrapper) RunInTransaction(statements []string) error {
	if len(statements) == 0 {
		return errors.New("no statements to run")
	}

	tx, err := w.db.Begin()
	if err != nil {
		return errors.Wrap(err, "can't begin transaction")
	}

	for _, statement := range statements {
		_, err = tx.Exec(statement)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "can't execute statement %s", statement)
		}
	}

	err = tx.Commit()
	if err != nil {
		return errors.Wrap(err, "can't commit transaction")
	}

	return nil
}
