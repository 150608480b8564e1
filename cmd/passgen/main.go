package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vaultpass/passgen/internal/cli"
	"github.com/vaultpass/passgen/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})))

	os.Exit(cli.Execute(context.Background(), cli.NewApp(cfg), os.Args[1:], os.Stdout, os.Stderr))
}
