package migrate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// DirExists checks if directory at path exists
func DirExists(dirpath string) bool {
	stats, err := os.Stat(dirpath)
	// any stat failure counts as absent, e.g. a path component that is
	// a file or is not readable
	if err != nil || !stats.IsDir() {
		return false
	}
	return true
}

// FileExists checks if file at path exists
func FileExists(fpath string) bool {
	stats, err := os.Stat(fpath)
	if err != nil || stats.IsDir() {
		return false
	}
	return true
}

// FindProjectDir recursively finds the project dir, the one that has
// migrationsDir as a straight subdir
func FindProjectDir(fromDir string, migrationsDir string) (string, error) {
	if DirExists(filepath.Join(fromDir, migrationsDir)) {
		return fromDir, nil
	}

	if isRootDir(fromDir) {
		return "", errors.New("project dir not found")
	}

	return FindProjectDir(filepath.Dir(fromDir), migrationsDir)
}

func isRootDir(dir string) bool {
	// second check is for windows
	if dir == "/" || dir == strings.Split(dir, string(filepath.Separator))[0] {
		return true
	}
	return false
}

// DirectionFromString tries to build Direction from string,
// checking for valid ones and returning an error if check was unsuccessful
func DirectionFromString(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	default:
		return directionError, errors.Errorf("can't parse direction from string %s", s)
	}
}

// EngineExists checks if the specified database engine is supported
func EngineExists(engine string) bool {
	_, ok := providers[engine]
	return ok
}

// Engines returns the list of supported database engines
func Engines() []string {
	var engines []string
	for engine := range providers {
		engines = append(engines, engine)
	}
	sort.Strings(engines)
	return engines
}
