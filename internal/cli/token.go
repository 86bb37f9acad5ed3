// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/postgrado/internal/auth"
	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// errMissingSecret is returned by token commands when JWT_SECRET is unset.
var errMissingSecret = errors.New("JWT_SECRET is required to sign tokens")

func newTokenCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token commands",
	}

	cmd.AddCommand(newTokenIssueCmd(rt))

	return cmd
}

func newTokenIssueCmd(rt *runtime) *cobra.Command {
	var cedula string

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Print an access token for the login record of a cedula",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.cfg.Token.Secret == "" {
				return errMissingSecret
			}

			tokens, err := sec.NewTokenService(rt.cfg.Token.Secret, rt.cfg.Token.Issuer)
			if err != nil {
				return err
			}

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

			// Revocation is never consulted when issuing access tokens.
			service := auth.NewService(store, nil, tokens, catalog, auth.Config{AccessTokenTTL: rt.cfg.Token.AccessTTL}, rt.logger)

			token, err := service.IssueAccessToken(ctx, cedula)
			if err != nil {
				return describe(err)
			}

			rt.logger.Info("access_token_issued",
				slog.String("cedula", cedula),
				slog.Time("expires_at", time.Now().Add(rt.cfg.Token.AccessTTL)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&cedula, "cedula", "", "National ID (required)")
	_ = cmd.MarkFlagRequired("cedula")

	return cmd
}

// describe renders client errors with their field details.
func describe(err error) error {
	appError := apperr.As(err)
	if appError == nil || len(appError.Details) == 0 {
		return err
	}

	message := appError.Message
	for _, detail := range appError.Details {
		message += fmt.Sprintf("\n  %s: %s", detail.Field, detail.Message)
	}
	return errors.New(message)
}
