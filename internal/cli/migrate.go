// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	cmd.AddCommand(newMigrateUpCmd(rt))
	cmd.AddCommand(newMigrateDownCmd(rt))
	cmd.AddCommand(newMigrateVersionCmd(rt))

	return cmd
}

func newMigrateUpCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.migrations().Up(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newMigrateDownCmd(rt *runtime) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.migrations().Down(steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	return cmd
}

func newMigrateVersionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := rt.migrations().Status()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", status.Version, status.Dirty)
			return nil
		},
	}
}
