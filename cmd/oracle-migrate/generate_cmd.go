package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate name...",
	Short: "generate empty up and down migration files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fpaths, err := migrator.GenerateMigration(strings.Join(args, " "))
		if err != nil {
			return errors.Wrap(err, "can't generate migration")
		}

		for _, fpath := range fpaths {
			fmt.Printf("created %s\n", fpath)
		}

		return nil
	},
}
