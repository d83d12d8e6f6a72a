package migrate

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// HistoryEntry is one row of the applied migrations log
type HistoryEntry struct {
	Title     string
	CreatedAt time.Time
	AppliedAt time.Time
}

// HistoryStore is the persisted log of applied migrations. Each operation
// is its own atomic unit against the database; the surrogate row id is
// assigned by the database, never by the caller.
type HistoryStore struct {
	wrapper *dbWrapper
	table   string
}

func newHistoryStore(wrapper *dbWrapper, table string) *HistoryStore {
	return &HistoryStore{wrapper: wrapper, table: table}
}

// EnsureSchema creates the history table if it is absent. Safe to run on
// every startup: an already existing table is not an error.
func (s *HistoryStore) EnsureSchema() error {
	has, err := s.wrapper.hasTable(s.table)
	if err != nil {
		return &BootstrapError{Err: err}
	}
	if has {
		return nil
	}

	err = s.wrapper.RunInTransaction(s.wrapper.provider.createHistoryTableStatements(s.table))
	if err != nil {
		// swallow the failure if the table appeared meanwhile,
		// e.g. created by a previous partially failed bootstrap
		if has, checkErr := s.wrapper.hasTable(s.table); checkErr == nil && has {
			return nil
		}
		return &BootstrapError{Err: err}
	}
	return nil
}

// LoadAll returns every recorded entry, ascending by title
func (s *HistoryStore) LoadAll() ([]HistoryEntry, error) {
	rows, err := s.wrapper.db.Query(
		fmt.Sprintf("SELECT title, created_at, applied_at FROM %s ORDER BY title ASC", s.table))
	if err != nil {
		return nil, errors.Wrap(err, "can't get applied migrations")
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var title, createdAt, appliedAt string
		err = rows.Scan(&title, &createdAt, &appliedAt)
		if err != nil {
			return nil, errors.Wrap(err, "can't scan migration history row")
		}

		entry := HistoryEntry{Title: title}
		entry.CreatedAt, _ = time.Parse(TimestampFormat, createdAt)
		entry.AppliedAt, _ = time.Parse(TimestampFormat, appliedAt)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "can't read migration history rows")
	}

	return entries, nil
}

// Append records one applied migration
func (s *HistoryStore) Append(title string, createdAt, appliedAt time.Time) error {
	_, err := s.wrapper.db.Exec(
		s.wrapper.setPlaceholders(fmt.Sprintf("INSERT INTO %s (title, created_at, applied_at) VALUES (?, ?, ?)", s.table)),
		title, createdAt.Format(TimestampFormat), appliedAt.Format(TimestampFormat))
	if err != nil {
		return errors.Wrapf(err, "can't record migration %s", title)
	}
	return nil
}

// Remove deletes the entry for title
func (s *HistoryStore) Remove(title string) error {
	_, err := s.wrapper.db.Exec(
		s.wrapper.setPlaceholders(fmt.Sprintf("DELETE FROM %s WHERE title = ?", s.table)),
		title)
	if err != nil {
		return errors.Wrapf(err, "can't remove migration %s from history", title)
	}
	return nil
}
