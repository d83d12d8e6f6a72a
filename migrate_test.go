package migrate

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testMigrationsDir = "test_migrations"
	// failingMigrationsDir holds a valid migration followed by a broken one
	failingMigrationsDir = "test_migrations_failing"
	// partialMigrationsDir misses the last migration of testMigrationsDir
	partialMigrationsDir = "test_migrations_partial"
)

var testMigrationFiles = map[string]string{
	"20180918200453-create_users.up.sql":   "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
	"20180918200453-create_users.down.sql": "DROP TABLE users;",
	"20180918200632-create_posts.up.sql": `CREATE TABLE posts (id INTEGER PRIMARY KEY, title TEXT, user_id INTEGER);
CREATE INDEX posts_user_idx ON posts (user_id);`,
	"20180918200632-create_posts.down.sql": `DROP INDEX posts_user_idx;
DROP TABLE posts;`,
	"20180918200745-add_emails.up.sql":   "CREATE TABLE emails (id INTEGER PRIMARY KEY, address TEXT);",
	"20180918200745-add_emails.down.sql": "DROP TABLE emails;",
}

var failingMigrationFiles = map[string]string{
	"20180918200453-create_users.up.sql":   "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
	"20180918200453-create_users.down.sql": "DROP TABLE users;",
	"20180918200632-broken.up.sql":         "THIS IS NOT SQL;",
	"20180918200632-broken.down.sql":       "SELECT 1;",
}

func TestMain(m *testing.M) {
	createTempStuff()
	code := m.Run()
	removeTempStuff()
	os.Exit(code)
}

func createTempStuff() {
	os.MkdirAll("test/dir", os.ModeDir|os.ModePerm)
	os.Create("test/file")

	writeMigrationFiles(testMigrationsDir, testMigrationFiles)
	writeMigrationFiles(failingMigrationsDir, failingMigrationFiles)

	partial := map[string]string{}
	for fname, body := range testMigrationFiles {
		if fname != "20180918200745-add_emails.up.sql" && fname != "20180918200745-add_emails.down.sql" {
			partial[fname] = body
		}
	}
	writeMigrationFiles(partialMigrationsDir, partial)
}

func writeMigrationFiles(dir string, files map[string]string) {
	os.MkdirAll(dir, os.ModeDir|os.ModePerm)
	for fname, body := range files {
		ioutil.WriteFile(filepath.Join(dir, fname), []byte(body), 0644)
	}
}

func removeTempStuff() {
	os.RemoveAll("test")
	os.RemoveAll(testMigrationsDir)
	os.RemoveAll(failingMigrationsDir)
	os.RemoveAll(partialMigrationsDir)
	os.Remove("test.db")
	os.Remove("mismatch.db")
	os.Remove("wrapper_test.db")
	os.Remove("history_test.db")
}

func Test_Direction_String(t *testing.T) {
	assert.Equal(t, "up", DirectionUp.String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "", directionError.String())
}
