package migrate

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var slugCleaner = regexp.MustCompile(`\W+`)

// GenerateMigration creates empty up and down migration files for name in
// the migrations dir and returns their paths.
func (m *Migrator) GenerateMigration(name string) ([]string, error) {
	slug := strings.Trim(slugCleaner.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return nil, errors.Errorf("can't build migration name from %s", name)
	}

	title := time.Now().Format(TimestampFormat) + "-" + slug

	var fpaths []string
	for _, suffix := range []string{upSuffix, downSuffix} {
		fpath := filepath.Join(m.projectDir, m.migrationsDir, title+suffix)
		if FileExists(fpath) {
			return nil, errors.Errorf("migration file %s already exists", fpath)
		}

		f, err := os.Create(fpath)
		if err != nil {
			return nil, errors.Wrapf(err, "can't create migration file %s", fpath)
		}
		f.Close()

		fpaths = append(fpaths, fpath)
	}

	return fpaths, nil
}
