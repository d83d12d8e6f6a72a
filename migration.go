package migrate

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TransactionRunner executes an ordered sequence of SQL statements as one
// atomic unit: one connection, one transaction, commit if every statement
// succeeds, rollback on the first failure.
type TransactionRunner interface {
	RunInTransaction(statements []string) error
}

// Action is a single unit of migration work. Run performs the work,
// typically one RunInTransaction call over the statements of a migration
// file, and reports completion or failure.
type Action interface {
	Run(r TransactionRunner) error
}

// ActionFunc adapts a plain function to the Action interface
type ActionFunc func(r TransactionRunner) error

func (f ActionFunc) Run(r TransactionRunner) error { return f(r) }

// SQLAction builds an Action that splits source into statements and runs
// them in one transaction.
func SQLAction(source string) Action {
	return ActionFunc(func(r TransactionRunner) error {
		statements, err := splitStatements(source)
		if err != nil {
			return err
		}
		return r.RunInTransaction(statements)
	})
}

// splitStatements splits a migration body on the ; delimiter, because some
// drivers can't exec multiple statements at once
func splitStatements(source string) ([]string, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.New("empty migration body")
	}

	var statements []string
	for _, s := range strings.Split(source, ";") {
		s = strings.TrimSpace(s)
		if s != "" {
			statements = append(statements, s)
		}
	}
	return statements, nil
}

// Migration holds info about one migration
type Migration struct {
	// Title identifies the migration, in <timestamp>-<slug> form
	Title string
	// Name is the slug part of the title
	Name string
	// CreatedAt is parsed from the title's timestamp prefix
	CreatedAt time.Time
	// AppliedAt is when the migration was applied, zero if it wasn't
	AppliedAt time.Time

	// Up applies the migration, Down reverts it.
	// Down may be nil when missing downs are allowed.
	Up   Action
	Down Action
}

// HumanName returns the migration name without underscores
func (m *Migration) HumanName() string {
	return strings.Replace(m.Name, "_", " ", -1)
}

type byTitle []*Migration

func (bt byTitle) Len() int           { return len(bt) }
func (bt byTitle) Swap(i, j int)      { bt[i], bt[j] = bt[j], bt[i] }
func (bt byTitle) Less(i, j int) bool { return bt[i].Title < bt[j].Title }

// parseTitle checks the <timestamp>-<slug> grammar and extracts both parts.
// The timestamp prefix is fixed width so lexicographic order over titles
// is chronological.
func parseTitle(title string) (ts time.Time, name string, err error) {
	if len(title) < len(TimestampFormat)+2 || title[len(TimestampFormat)] != '-' {
		return time.Time{}, "", errors.Errorf("title %s is not in timestamp-name form", title)
	}

	ts, err = time.Parse(TimestampFormat, title[:len(TimestampFormat)])
	if err != nil {
		return time.Time{}, "", errors.Wrapf(err, "title %s has malformed timestamp", title)
	}

	return ts, title[len(TimestampFormat)+1:], nil
}
