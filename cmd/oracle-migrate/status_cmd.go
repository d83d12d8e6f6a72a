package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/panuhorsmalahti/oracle-migrate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "database schema status",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrations, err := migrator.Status()
		if err != nil {
			return errors.Wrap(err, "can't get migrations status")
		}

		if len(migrations) == 0 {
			fmt.Println("No migrations exist yet")
			return nil
		}

		appliedAtRowFn := func(appliedAt time.Time) string {
			if appliedAt == (time.Time{}) {
				return "-"
			}
			return appliedAt.Format(migrate.PrintTimestampFormat)
		}

		isUpToDate := true
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Version", "Applied at"})
		table.SetAutoWrapText(false)
		for _, migration := range migrations {
			table.Append([]string{
				migration.HumanName(), migration.CreatedAt.Format(migrate.TimestampFormat),
				appliedAtRowFn(migration.AppliedAt),
			})

			if migration.AppliedAt == (time.Time{}) {
				isUpToDate = false
			}
		}
		table.Render()

		if latest := migrator.Latest(); latest != nil {
			fmt.Printf("Latest known migration is %s\n", latest.Title)
		}

		lastApplied, err := migrator.LastApplied()
		if err != nil {
			return errors.Wrap(err, "can't get last applied migration")
		}
		if lastApplied != nil {
			fmt.Printf("Last applied migration is %s\n", lastApplied.Title)
		} else {
			fmt.Println("No migrations were applied yet")
		}

		if isUpToDate {
			fmt.Println("Database schema is up to date")
		} else {
			fmt.Println("Database schema is not up to date")
		}

		return nil
	},
}
