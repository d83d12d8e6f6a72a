package migrate

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry is the ordered, read-only collection of locally known
// migrations, sorted ascending by title.
type Registry struct {
	migrations []*Migration
	index      map[string]*Migration
}

// NewRegistry builds a Registry from source, sorting migrations ascending
// by title. Duplicated titles make the load fail.
func NewRegistry(source Source) (*Registry, error) {
	migrations, err := source.Migrations()
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	sort.Sort(byTitle(migrations))

	index := make(map[string]*Migration, len(migrations))
	for _, m := range migrations {
		if _, ok := index[m.Title]; ok {
			return nil, &LoadError{Err: errors.Errorf("migrations titled %s are duplicated", m.Title)}
		}
		index[m.Title] = m
	}

	return &Registry{migrations: migrations, index: index}, nil
}

// All returns migrations in ascending title order
func (r *Registry) All() []*Migration {
	return r.migrations
}

// Find returns the migration titled title, if the registry holds it
func (r *Registry) Find(title string) (*Migration, bool) {
	m, ok := r.index[title]
	return m, ok
}

func (r *Registry) Len() int {
	return len(r.migrations)
}
