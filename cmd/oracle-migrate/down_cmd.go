package main

import (
	"fmt"

	"github.com/panuhorsmalahti/oracle-migrate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var downCmd = &cobra.Command{
	Use:   "down [target|all]",
	Short: "revert the last applied migration, everything back through target, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var target string
		if len(args) > 0 {
			target = args[0]
		}

		_, err := down(migrator, target)
		return err
	},
}

func down(migrator *migrate.Migrator, target string) (int, error) {
	done := make(chan struct{})
	gdone := make(chan struct{})

	go func() {
		for {
			select {
			case p := <-progressCh:
				fmt.Printf("reverting %s\n", p.Migration.Title)
			case <-done:
				close(gdone)
				return
			}
		}
	}()

	n, err := migrator.Down(target)
	close(done)

	<-gdone
	if err != nil {
		return n, errors.Wrap(err, "can't rollback")
	}

	if n == 0 {
		fmt.Println("there are no migrations to revert")
		return n, nil
	}
	fmt.Printf("%d %s successfully reverted\n", n, pluralize("migration", n))

	return n, nil
}
