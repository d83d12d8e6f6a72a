package main

import (
	"fmt"

	"github.com/panuhorsmalahti/oracle-migrate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var upCmd = &cobra.Command{
	Use:   "up [target]",
	Short: "apply pending migrations, all of them or up to and including target",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var target string
		if len(args) > 0 {
			target = args[0]
		}

		_, err := up(migrator, target)
		return err
	},
}

func up(migrator *migrate.Migrator, target string) (int, error) {
	done := make(chan struct{})
	gdone := make(chan struct{})

	go func() {
		for {
			select {
			case p := <-progressCh:
				fmt.Printf("applying %s\n", p.Migration.Title)
			case <-done:
				close(gdone)
				return
			}
		}
	}()

	n, err := migrator.Up(target)
	close(done)

	<-gdone
	if err != nil {
		return n, errors.Wrap(err, "can't migrate")
	}

	if n == 0 {
		fmt.Println("there are no migrations to apply")
		return n, nil
	}
	fmt.Printf("%d %s successfully applied\n", n, pluralize("migration", n))

	return n, nil
}
