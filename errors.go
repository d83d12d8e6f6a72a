package migrate

import "fmt"

// LoadError means migration definitions could not be loaded:
// malformed file names, unreadable sources or duplicated titles.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return "can't load migrations: " + e.Err.Error()
}

// Cause implements the causer interface used by errors.Cause
func (e *LoadError) Cause() error { return e.Err }

// BootstrapError means the history table could not be created
// for a reason other than already existing.
type BootstrapError struct {
	Err error
}

func (e *BootstrapError) Error() string {
	return "can't bootstrap migrations history: " + e.Err.Error()
}

func (e *BootstrapError) Cause() error { return e.Err }

// NotFoundError means the requested target title is neither pending
// nor recorded in history.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("migration %s not found", e.Title)
}

// AlreadyAppliedError means an up target is already recorded in history.
type AlreadyAppliedError struct {
	Title string
}

func (e *AlreadyAppliedError) Error() string {
	return fmt.Sprintf("migration %s is already applied", e.Title)
}

// HistoryMismatchError means history records a title that has no
// corresponding local migration: the migration file was deleted or renamed.
type HistoryMismatchError struct {
	Title string
}

func (e *HistoryMismatchError) Error() string {
	return fmt.Sprintf("history records migration %s which does not exist locally", e.Title)
}

// ExecutionError wraps the failure of one migration's up or down action.
type ExecutionError struct {
	Title     string
	Direction Direction
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("can't execute %s migration of %s: %s", e.Direction, e.Title, e.Err)
}

func (e *ExecutionError) Cause() error { return e.Err }
