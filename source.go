package migrate

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Source provides candidate migration definitions to a Registry
type Source interface {
	Migrations() ([]*Migration, error)
}

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// DirSource discovers migrations in a directory, pairing
// <title>.up.sql and <title>.down.sql files.
type DirSource struct {
	Dir string
	// AllowMissingDowns binds a nil down action instead of failing
	// when a migration has no down file
	AllowMissingDowns bool
}

func (s *DirSource) Migrations() ([]*Migration, error) {
	ups := map[string]string{}
	downs := map[string]string{}

	err := filepath.Walk(s.Dir, func(mpath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if mpath != s.Dir {
				return filepath.SkipDir
			}
			return nil
		}

		fname := info.Name()
		switch {
		case strings.HasSuffix(fname, upSuffix):
			ups[strings.TrimSuffix(fname, upSuffix)] = mpath
		case strings.HasSuffix(fname, downSuffix):
			downs[strings.TrimSuffix(fname, downSuffix)] = mpath
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't read migrations dir %s", s.Dir)
	}

	var migrations []*Migration
	for title, fpath := range ups {
		ts, name, err := parseTitle(title)
		if err != nil {
			// not a migration file
			continue
		}

		m := &Migration{
			Title:     title,
			Name:      name,
			CreatedAt: ts,
			Up:        fileAction(fpath),
		}

		if dpath, ok := downs[title]; ok {
			m.Down = fileAction(dpath)
		} else if !s.AllowMissingDowns {
			return nil, errors.Errorf("migration %s has no down file", title)
		}

		migrations = append(migrations, m)
	}

	for title := range downs {
		if _, _, err := parseTitle(title); err != nil {
			continue
		}
		if _, ok := ups[title]; !ok {
			return nil, errors.Errorf("migration %s has a down file but no up file", title)
		}
	}

	return migrations, nil
}

// fileAction reads the file lazily, at execution time, so loading a big
// registry stays cheap
func fileAction(fpath string) Action {
	return ActionFunc(func(r TransactionRunner) error {
		body, err := ioutil.ReadFile(fpath)
		if err != nil {
			return errors.Wrapf(err, "can't read migration file %s", fpath)
		}

		statements, err := splitStatements(string(body))
		if err != nil {
			return errors.Wrapf(err, "migration file %s", fpath)
		}
		return r.RunInTransaction(statements)
	})
}
