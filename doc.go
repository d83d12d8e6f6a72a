// Package migrate applies and reverts ordered SQL schema migrations
// against a relational database, tracking applied ones in a history table
// so repeated runs are idempotent and partial progress is resumable.
//
// Migrations are pairs of <timestamp>-<name>.up.sql and
// <timestamp>-<name>.down.sql files; the fixed width timestamp prefix
// makes lexicographic title order chronological. Each file body may hold
// several statements separated by ; and is executed as one transaction.
//
// Supported engines: oracle, postgres, mysql and sqlite. Can be used as a
// library through Migrator or via the oracle-migrate CLI tool, configured
// with flags, a config file, environment variables or an etcd/consul
// key value store.
package migrate
