package migrate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestWrapper(t *testing.T, dbName string) *dbWrapper {
	t.Helper()
	os.Remove(dbName)

	w := newDBWrapper(&Settings{Engine: "sqlite", Database: dbName}, providers["sqlite"])
	require.NoError(t, w.open())
	return w
}

func Test_dbWrapper_RunInTransaction_CommitsOnSuccess(t *testing.T) {
	w := openTestWrapper(t, "wrapper_test.db")
	defer w.close()

	err := w.RunInTransaction([]string{
		"CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)",
		"INSERT INTO items (name) VALUES ('first')",
		"INSERT INTO items (name) VALUES ('second')",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, w.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 2, count)
}

func Test_dbWrapper_RunInTransaction_RollsBackOnFailure(t *testing.T) {
	w := openTestWrapper(t, "wrapper_test.db")
	defer w.close()

	require.NoError(t, w.RunInTransaction([]string{"CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)"}))

	err := w.RunInTransaction([]string{
		"INSERT INTO items (name) VALUES ('first')",
		"THIS IS NOT SQL",
		"INSERT INTO items (name) VALUES ('never reached')",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't execute statement")

	// the insert before the failure was rolled back
	var count int
	require.NoError(t, w.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 0, count)
}

func Test_dbWrapper_RunInTransaction_NoStatements(t *testing.T) {
	w := openTestWrapper(t, "wrapper_test.db")
	defer w.close()

	assert.Error(t, w.RunInTransaction(nil))
}

func Test_dbWrapper_hasTable(t *testing.T) {
	w := openTestWrapper(t, "wrapper_test.db")
	defer w.close()

	has, err := w.hasTable("items")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, w.RunInTransaction([]string{"CREATE TABLE items (id INTEGER PRIMARY KEY)"}))

	has, err = w.hasTable("items")
	require.NoError(t, err)
	assert.True(t, has)
}
