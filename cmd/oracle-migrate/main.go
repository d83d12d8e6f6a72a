package main

import (
	"github.com/panuhorsmalahti/oracle-migrate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "github.com/spf13/viper/remote"
)

// appFlags contains vars that can be specified only as flags
type appFlags struct {
	// prefix defines alternative prefix for environment variable names
	prefix string
	// env defines optional alternative environment and thus alternative
	// database configuration, e.g. for tests
	env string

	// config file name (without extension)
	configFile string

	// kvsParamsStr is key value store connection string
	// (in store://host(:port)/path.type format)
	kvsParamsStr string
	// secretKeyRingPath is a path to key ring file
	secretKeyRingPath string
}

var (
	migrator   *migrate.Migrator
	flags      *appFlags
	progressCh chan migrate.Progress
)

// migrateFlags holds variables used for flags that used by viper to provide
// settings for migrator
var migrateFlags struct {
	engine            string
	database          string
	user              string
	password          string
	host              string
	port              int
	dir               string
	historyTable      string
	allowMissingDowns bool
}

func init() {
	flags = &appFlags{}

	rootCmd.PersistentFlags().StringVarP(&flags.prefix, "prefix", "x", "", "environment variables prefix, default is the project dir name")
	rootCmd.PersistentFlags().StringVarP(&flags.env, "env", "e", "", "optional environment (to support more than one database, e.g. for tests)")

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "oracle-migrate", "config file, default is oracle-migrate.yml")
	rootCmd.PersistentFlags().StringVarP(&flags.kvsParamsStr, "kvsparams", "k", "", "key value store connection string, format is provider://host:port/path.type")
	rootCmd.PersistentFlags().StringVarP(&flags.secretKeyRingPath, "secretkeyring", "r", "", "secret key ring path")

	rootCmd.PersistentFlags().StringVarP(&migrateFlags.engine, "engine", "n", "", "database engine (oracle, postgres, mysql or sqlite)")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.database, "database", "d", "", "database name (service name for oracle)")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.user, "user", "u", "", "database user")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.password, "password", "p", "", "database password")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.host, "host", "b", "", "database host, default is localhost")
	rootCmd.PersistentFlags().IntVarP(&migrateFlags.port, "port", "o", 0, "database port, default is specific for each database engine")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.dir, "dir", "i", "", "migrations directory, default is migrations")
	rootCmd.PersistentFlags().StringVarP(&migrateFlags.historyTable, "table", "t", "", "migrations history table, default is migrations_history")
	rootCmd.PersistentFlags().BoolVarP(&migrateFlags.allowMissingDowns, "missingdowns", "m", false, "allow missing down migrations")

	rootCmd.AddCommand(upCmd, downCmd, statusCmd, generateCmd)

	// only here flags are parsed and viper gives proper configuration,
	// so we initialize migrator here instead of main function
	cobra.OnInitialize(func() {
		v, err := (&viperConfigurator{viper: viper.GetViper(), flags: flags}).configure()
		if err != nil {
			exitWithError(err)
		}

		progressCh = make(chan migrate.Progress)
		migrator, err = migrate.NewMigrator(&migrate.Settings{
			Engine:            v.GetString("engine"),
			Database:          v.GetString("database"),
			User:              v.GetString("user"),
			Password:          v.GetString("password"),
			Host:              v.GetString("host"),
			Port:              v.GetInt("port"),
			MigrationsDir:     v.GetString("dir"),
			HistoryTable:      v.GetString("table"),
			AllowMissingDowns: v.GetBool("missingdowns"),
			ProgressCh:        progressCh,
		})
		if err != nil {
			exitWithError(err)
		}
	})
}

var rootCmd = &cobra.Command{
	Use:          "oracle-migrate",
	Short:        "database schema migrations tool",
	SilenceUsage: true,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		exitWithError(err)
	}

	if migrator != nil {
		migrator.Close()
	}
}
