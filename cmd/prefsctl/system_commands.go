package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/tui"
)

func getTokenCommands() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Admin tokens for the key management API",
		Commands: []*cli.Command{
			{
				Name:   "issue",
				Usage:  "Sign an admin token with the configured signing key",
				Action: runTokenIssue,
			},
		},
	}
}

func runTokenIssue(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.Auth.TokenSignKey == "" {
		return errNoSignKey
	}

	log := logger.NewCLILogger("prefsctl", cfg.Log.Level)
	token, err := service.NewTokenService(cfg.Auth, log).CreateToken(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out(cmd), token.String())
	return nil
}

func getBrowseCommand() *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Browse preferences and keys interactively",
		Action: withBackend(runBrowse),
	}
}

func runBrowse(ctx context.Context, _ *cli.Command, b *backend) error {
	return tui.New(b.prefs, b.keys, buildInfo(), b.source, b.log).Run(ctx)
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print build information, and the server version with --remote",
		Action: runVersion,
	}
}

func runVersion(ctx context.Context, cmd *cli.Command) error {
	w := out(cmd)
	fmt.Fprint(w, buildInfo().String())

	if !cmd.Bool("remote") {
		return nil
	}

	b, err := openBackend(ctx, cmd)
	if err != nil {
		return err
	}
	defer b.Close()

	v, err := b.version.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}
	fmt.Fprintln(w, "Server version:", v)
	return nil
}
