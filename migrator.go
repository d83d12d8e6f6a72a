package migrate

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
)

type migratorState int

const (
	stateUninitialized = migratorState(iota)
	stateInitializing
	stateReady
	stateRunning
	stateFailed
	stateClosed
)

// Migrator reconciles the local migrations registry against the stored
// history and drives sequential execution of up and down actions.
// A single Migrator instance must be the only writer of the history table;
// two processes migrating the same database concurrently race between
// reading history and updating it, and may corrupt the reconciliation.
type Migrator struct {
	// Engine is the database engine name
	Engine string

	projectDir    string
	migrationsDir string

	wrapper  *dbWrapper
	registry *Registry
	history  *HistoryStore

	// applied is the in-memory history snapshot for the lifetime of the
	// migrator, sorted ascending by title; the store is the durable
	// source of truth
	applied []string

	progressCh chan Progress
	state      migratorState
}

// NewMigrator loads the migrations registry and the stored history and
// returns a ready Migrator, or an error if bootstrap or load failed.
func NewMigrator(settings *Settings) (*Migrator, error) {
	if settings.Engine == "" {
		return nil, errors.New("database engine not specified")
	}
	if settings.Database == "" {
		return nil, errors.New("database name not specified")
	}

	provider, ok := providers[settings.Engine]
	if !ok {
		return nil, errors.Errorf("unknown database engine %s", settings.Engine)
	}

	m := &Migrator{
		Engine:        settings.Engine,
		migrationsDir: settings.MigrationsDir,
		progressCh:    settings.ProgressCh,
		state:         stateInitializing,
	}
	if m.migrationsDir == "" {
		m.migrationsDir = "migrations"
	}

	historyTable := settings.HistoryTable
	if historyTable == "" {
		historyTable = "migrations_history"
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "can't get working directory")
	}
	m.projectDir, err = FindProjectDir(wd, m.migrationsDir)
	if err != nil {
		return nil, err
	}

	m.registry, err = NewRegistry(&DirSource{
		Dir:               filepath.Join(m.projectDir, m.migrationsDir),
		AllowMissingDowns: settings.AllowMissingDowns,
	})
	if err != nil {
		m.state = stateFailed
		return nil, err
	}

	m.wrapper = newDBWrapper(settings, provider)
	err = m.wrapper.open()
	if err != nil {
		m.state = stateFailed
		return nil, err
	}

	m.history = newHistoryStore(m.wrapper, historyTable)
	err = m.init()
	if err != nil {
		m.wrapper.close()
		m.state = stateFailed
		return nil, err
	}

	m.state = stateReady
	return m, nil
}

// init bootstraps the history table and loads the history snapshot
func (m *Migrator) init() error {
	err := m.history.EnsureSchema()
	if err != nil {
		return err
	}

	entries, err := m.history.LoadAll()
	if err != nil {
		return err
	}

	m.applied = make([]string, 0, len(entries))
	for _, entry := range entries {
		m.applied = append(m.applied, entry.Title)
	}
	sort.Strings(m.applied)

	return nil
}

// Close frees resources acquired by the migrator
func (m *Migrator) Close() error {
	m.state = stateClosed
	return m.wrapper.close()
}

// Up applies pending migrations in ascending title order. An empty target
// applies all of them; a target title applies everything up to and
// including it, skipping already applied ones. Returns the number of
// migrations actually applied. On failure the batch stops at the failing
// migration: everything applied before it stays recorded in history.
func (m *Migrator) Up(target string) (int, error) {
	err := m.enterRun()
	if err != nil {
		return 0, err
	}
	defer m.leaveRun()

	pending, err := planUp(m.registry.All(), m.appliedSet(), target)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, migration := range pending {
		m.notify(migration, DirectionUp)

		if migration.Up == nil {
			return n, &ExecutionError{
				Title: migration.Title, Direction: DirectionUp,
				Err: errors.New("migration has no up action"),
			}
		}
		err = migration.Up.Run(m.wrapper)
		if err != nil {
			return n, &ExecutionError{Title: migration.Title, Direction: DirectionUp, Err: err}
		}

		err = m.history.Append(migration.Title, migration.CreatedAt, time.Now())
		if err != nil {
			return n, err
		}
		m.applied = append(m.applied, migration.Title)
		sort.Strings(m.applied)
		n++
	}

	return n, nil
}

// Down reverts applied migrations in descending title order. An empty
// target reverts the single most recently applied migration, DownTargetAll
// reverts all of them, a target title reverts everything from the most
// recent back through the target inclusive. Returns the number of
// migrations actually reverted; entries reverted before a failure stay
// removed from history.
func (m *Migrator) Down(target string) (int, error) {
	err := m.enterRun()
	if err != nil {
		return 0, err
	}
	defer m.leaveRun()

	reverting, err := planDown(m.registry.Find, m.applied, target)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, migration := range reverting {
		m.notify(migration, DirectionDown)

		// a nil down action means the migration was loaded without a
		// down file and reverting it only clears the history entry
		if migration.Down != nil {
			err = migration.Down.Run(m.wrapper)
			if err != nil {
				return n, &ExecutionError{Title: migration.Title, Direction: DirectionDown, Err: err}
			}
		}

		err = m.history.Remove(migration.Title)
		if err != nil {
			return n, err
		}
		m.dropApplied(migration.Title)
		n++
	}

	return n, nil
}

// Status returns every known migration, ascending by title, with AppliedAt
// set for the applied ones. History entries with no local migration are
// included as bare titled records so they show up instead of being
// silently dropped.
func (m *Migrator) Status() ([]*Migration, error) {
	entries, err := m.history.LoadAll()
	if err != nil {
		return nil, err
	}

	appliedAt := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		appliedAt[entry.Title] = entry.AppliedAt
	}

	var migrations []*Migration
	for _, migration := range m.registry.All() {
		status := *migration
		status.AppliedAt = appliedAt[migration.Title]
		migrations = append(migrations, &status)
		delete(appliedAt, migration.Title)
	}

	for title, at := range appliedAt {
		orphan := &Migration{Title: title, AppliedAt: at}
		orphan.CreatedAt, orphan.Name, _ = parseTitle(title)
		migrations = append(migrations, orphan)
	}
	sort.Sort(byTitle(migrations))

	return migrations, nil
}

// LastApplied returns the most recently applied migration, nil if history
// is empty
func (m *Migrator) LastApplied() (*Migration, error) {
	if len(m.applied) == 0 {
		return nil, nil
	}

	title := m.applied[len(m.applied)-1]
	migration, ok := m.registry.Find(title)
	if !ok {
		return nil, &HistoryMismatchError{Title: title}
	}
	return migration, nil
}

// Latest returns the migration with the greatest title known locally,
// applied or not; nil if the registry is empty
func (m *Migrator) Latest() *Migration {
	all := m.registry.All()
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

func (m *Migrator) enterRun() error {
	if m.state != stateReady {
		return errors.New("migrator is not ready")
	}
	m.state = stateRunning
	return nil
}

func (m *Migrator) leaveRun() {
	m.state = stateReady
}

func (m *Migrator) appliedSet() map[string]bool {
	set := make(map[string]bool, len(m.applied))
	for _, title := range m.applied {
		set[title] = true
	}
	return set
}

func (m *Migrator) dropApplied(title string) {
	for i, t := range m.applied {
		if t == title {
			m.applied = append(m.applied[:i], m.applied[i+1:]...)
			return
		}
	}
}

func (m *Migrator) notify(migration *Migration, direction Direction) {
	if m.progressCh != nil {
		m.progressCh <- Progress{Migration: migration, Direction: direction}
	}
}
