package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
)

// App carries the dependencies shared by every command.
type App struct {
	Config    config.Config
	Generator *crypto.Generator
	Hasher    *crypto.Hasher
}

// NewApp builds an App on the crypto/rand source with default Argon2id parameters.
func NewApp(cfg config.Config) *App {
	return &App{
		Config:    cfg,
		Generator: crypto.New(),
		Hasher:    crypto.NewHasher(crypto.DefaultHashParams()),
	}
}

type generateFlags struct {
	length         int
	number         int
	noUppercase    bool
	noDigits       bool
	noSymbols      bool
	excludeSimilar bool
	hash           bool
}

func (f generateFlags) config() crypto.Config {
	return crypto.Config{
		Length:         f.length,
		Uppercase:      !f.noUppercase,
		Digits:         !f.noDigits,
		Symbols:        !f.noSymbols,
		ExcludeSimilar: f.excludeSimilar,
	}
}

// Command returns the passgen root command. Run without a subcommand it
// generates passwords.
func (a *App) Command() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate secure random passwords",
		Example: `  # Generate a default 12-character password
  passgen

  # Generate a 16-character password
  passgen -l 16

  # Generate 5 passwords without symbols
  passgen -n 5 --no-symbols

  # Generate a password without similar characters
  passgen --exclude-similar`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd.OutOrStdout(), flags)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&flags.length, "length", "l", a.Config.Length, "length of the password")
	fs.IntVarP(&flags.number, "number", "n", a.Config.Count, "number of passwords to generate")
	fs.BoolVar(&flags.noUppercase, "no-uppercase", false, "exclude uppercase letters")
	fs.BoolVar(&flags.noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&flags.noSymbols, "no-symbols", false, "exclude special symbols")
	fs.BoolVar(&flags.excludeSimilar, "exclude-similar", false, "exclude similar characters ("+crypto.SimilarChars+") from filler positions")
	fs.BoolVar(&flags.hash, "hash", false, "print an Argon2id hash after each password, separated by a tab")

	cmd.AddCommand(a.serveCommand(), a.tokenCommand(), a.verifyCommand())
	return cmd
}

func (a *App) runGenerate(w io.Writer, flags generateFlags) error {
	cfg := flags.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Debug("generating passwords", "length", cfg.Length, "count", flags.number, "exclude_similar", cfg.ExcludeSimilar)

	passwords, err := a.Generator.GenerateMany(cfg, flags.number)
	if err != nil {
		return err
	}

	var hashes []string
	if flags.hash {
		if hashes, err = a.Hasher.HashAll(passwords); err != nil {
			return fmt.Errorf("hashing passwords: %w", err)
		}
	}

	_, err = io.WriteString(w, render(passwords, hashes))
	return err
}

// render formats passwords one per line. A single password is printed bare;
// more than one get a 1-based ordinal prefix.
func render(passwords, hashes []string) string {
	var sb strings.Builder
	for i, pw := range passwords {
		if len(passwords) > 1 {
			fmt.Fprintf(&sb, "%d. ", i+1)
		}
		sb.WriteString(pw)
		if i < len(hashes) {
			sb.WriteByte('\t')
			sb.WriteString(hashes[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, app *App, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := app.Command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
