package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/crypto"
)

var errMismatch = errors.New("password does not match hash")

func (a *App) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify PASSWORD HASH",
		Short: "Check a password against an Argon2id hash printed by --hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := crypto.VerifyPassword(args[0], args[1])
			if err != nil {
				return err
			}
			if !match {
				return errMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
}
