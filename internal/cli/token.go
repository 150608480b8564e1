package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/crypto"
)

var errNoSecret = errors.New("PASSGEN_JWT_SECRET is not set")

func (a *App) tokenCommand() *cobra.Command {
	var (
		client   string
		maxCount int
	)
	expiry := a.Config.JWTExpiry

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Config.JWTSecret == "" {
				return errNoSecret
			}
			token, err := crypto.GenerateToken(client, maxCount, a.Config.JWTSecret, expiry)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "name of the client the token is issued to")
	cmd.Flags().IntVar(&maxCount, "max-count", 0, "maximum passwords per request for this client (0 uses the server limit)")
	cmd.Flags().DurationVar(&expiry, "expiry", expiry, "token lifetime")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
