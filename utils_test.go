package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DirExists(t *testing.T) {
	assert.True(t, DirExists("test/dir"))
	assert.False(t, DirExists("test/file"))
	assert.False(t, DirExists("test/nothing"))
	// stat fails with an error other than not-exist when a path
	// component is a file
	assert.False(t, DirExists("test/file/nothing"))
}

func Test_FileExists(t *testing.T) {
	assert.True(t, FileExists("test/file"))
	assert.False(t, FileExists("test/dir"))
	assert.False(t, FileExists("test/nothing"))
	assert.False(t, FileExists("test/file/nothing"))
}

func Test_FindProjectDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	projectDir, err := FindProjectDir(wd, testMigrationsDir)
	require.NoError(t, err)
	assert.Equal(t, wd, projectDir)

	// found from a subdir too
	projectDir, err = FindProjectDir(filepath.Join(wd, "test", "dir"), testMigrationsDir)
	require.NoError(t, err)
	assert.Equal(t, wd, projectDir)

	_, err = FindProjectDir(wd, "migrationsss")
	assert.EqualError(t, err, "project dir not found")
}

func Test_DirectionFromString(t *testing.T) {
	d, err := DirectionFromString("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	d, err = DirectionFromString("DOWN")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, d)

	_, err = DirectionFromString("sideways")
	assert.Error(t, err)
}

func Test_Engines(t *testing.T) {
	assert.Equal(t, []string{"mysql", "oracle", "postgres", "sqlite"}, Engines())

	assert.True(t, EngineExists("oracle"))
	assert.False(t, EngineExists("nosql"))
}
