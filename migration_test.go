package migrate

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	batches [][]string
	err     error
}

func (r *recordingRunner) RunInTransaction(statements []string) error {
	r.batches = append(r.batches, statements)
	return r.err
}

func Test_parseTitle(t *testing.T) {
	ts, name, err := parseTitle("20180918200453-create_users")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 9, 18, 20, 4, 53, 0, time.UTC), ts)
	assert.Equal(t, "create_users", name)

	_, _, err = parseTitle("create_users")
	assert.Error(t, err)

	_, _, err = parseTitle("2018-create_users")
	assert.Error(t, err)

	_, _, err = parseTitle("2018091820045x-create_users")
	assert.Error(t, err)

	// no slug
	_, _, err = parseTitle("20180918200453-")
	assert.Error(t, err)
}

func Test_splitStatements(t *testing.T) {
	statements, err := splitStatements("CREATE TABLE a (id INT);\nCREATE TABLE b (id INT);")
	require.NoError(t, err)
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}, statements)

	statements, err = splitStatements("SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"SELECT 1"}, statements)

	_, err = splitStatements("  \n\t ")
	assert.Error(t, err)
}

func Test_SQLAction(t *testing.T) {
	runner := &recordingRunner{}

	err := SQLAction("CREATE TABLE a (id INT);\nCREATE TABLE b (id INT);").Run(runner)
	require.NoError(t, err)
	require.Len(t, runner.batches, 1)
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}, runner.batches[0])

	runner.err = errors.New("boom")
	err = SQLAction("SELECT 1;").Run(runner)
	assert.EqualError(t, err, "boom")
}

func Test_Migration_HumanName(t *testing.T) {
	m := &Migration{Name: "create_users_table"}
	assert.Equal(t, "create users table", m.HumanName())
}
