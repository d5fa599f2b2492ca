// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// keyPaths mirrors the API's key variables so one .env serves both binaries.
type keyPaths struct {
	Private string `env:"JWT_PRIVATE_KEY_PATH"`
	Public  string `env:"JWT_PUBLIC_KEY_PATH"`
}

func newTokenCmd() *cobra.Command {
	var (
		role     string
		subject  string
		username string
		ttl      time.Duration
		paths    keyPaths
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an RS256 access token for local API testing",
		Long: `Mint an access token signed with the private key the API trusts.

Key paths default to JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH.

Examples:
  bookscore token --role admin --sub dev
  bookscore token --role viewer --ttl 1h`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var fromEnv keyPaths
			if err := env.Parse(&fromEnv); err != nil {
				return fmt.Errorf("reading key paths: %w", err)
			}
			if paths.Private == "" {
				paths.Private = fromEnv.Private
			}
			if paths.Public == "" {
				paths.Public = fromEnv.Public
			}
			if paths.Private == "" || paths.Public == "" {
				return fmt.Errorf("both key paths are required (--private-key/--public-key or JWT_PRIVATE_KEY_PATH/JWT_PUBLIC_KEY_PATH)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := sec.NewTokenService(paths.Private, paths.Public, constants.AuthIssuer)
			if err != nil {
				return err
			}

			if username == "" {
				username = subject
			}

			token, err := tokens.GenerateAccessToken(subject, username, sec.UserRole(role), ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(sec.RoleViewer), "Role claim: admin, curator or viewer")
	cmd.Flags().StringVar(&subject, "sub", "dev", "Subject and user ID claim")
	cmd.Flags().StringVar(&username, "name", "", "Username claim (defaults to --sub)")
	cmd.Flags().DurationVar(&ttl, "ttl", constants.DevTokenTTL, "Token lifetime")
	cmd.Flags().StringVar(&paths.Private, "private-key", "", "Path to the RSA private key (PEM)")
	cmd.Flags().StringVar(&paths.Public, "public-key", "", "Path to the RSA public key (PEM)")

	return cmd
}
