// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/pkg/pointer"
)

func newUserCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Identity management commands",
	}

	cmd.AddCommand(newUserUpsertCmd(rt))

	return cmd
}

// userFlags mirrors the upsert request body.
type userFlags struct {
	cedula    string
	firstName string
	lastName  string
	roleCode  int
	secret    string
	email     string
}

// input keeps only the flags set on the command line, so an update touches
// nothing else.
func (flags *userFlags) input(set *pflag.FlagSet) identity.UpsertInput {
	input := identity.UpsertInput{Cedula: pointer.To(flags.cedula)}
	if set.Changed("nombre") {
		input.FirstName = pointer.To(flags.firstName)
	}
	if set.Changed("apellido") {
		input.LastName = pointer.To(flags.lastName)
	}
	if set.Changed("tipo") {
		input.RoleCode = pointer.To(flags.roleCode)
	}
	if set.Changed("password") {
		input.Secret = pointer.To(flags.secret)
	}
	if set.Changed("correo") {
		input.Email = pointer.To(flags.email)
	}
	return input
}

func newUserUpsertCmd(rt *runtime) *cobra.Command {
	flags := &userFlags{}

	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or update an identity and its login record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := rt.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			store := identity.NewPostgresStore(pool)
			catalog, err := identity.LoadCatalog(ctx, store)
			if err != nil {
				return err
			}

			result, err := identity.NewService(store, catalog, rt.logger).Upsert(ctx, flags.input(cmd.Flags()))
			if err != nil {
				return describe(err)
			}

			message := identity.MessageUpdated
			if result.Created {
				message = identity.MessageCreated
			}

			encoded, err := json.MarshalIndent(result.Identity, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", message, encoded)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.cedula, "cedula", "", "National ID (required)")
	cmd.Flags().StringVar(&flags.firstName, "nombre", "", "First name")
	cmd.Flags().StringVar(&flags.lastName, "apellido", "", "Last name")
	cmd.Flags().IntVar(&flags.roleCode, "tipo", 0, "Role code: 1 admin, 2 student, 3 professor")
	cmd.Flags().StringVar(&flags.secret, "password", "", "Login secret, stored hashed")
	cmd.Flags().StringVar(&flags.email, "correo", "", "Email address")
	_ = cmd.MarkFlagRequired("cedula")

	return cmd
}
