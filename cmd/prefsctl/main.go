// Command prefsctl reads and writes typed preferences and administers the
// key registry, either against a local store or a running prefsd.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "prefsctl:", err)
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "prefsctl",
		Usage:   "Typed, optionally encrypted preference storage",
		Version: buildVersion,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "JSON config file path",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: ".env file path",
			},
			&cli.StringFlag{
				Name:    "dsn",
				Aliases: []string{"d"},
				Usage:   "Local storage DSN: memory, a .json file, a SQLite file or a postgres:// URL",
			},
			&cli.BoolFlag{
				Name:    "remote",
				Aliases: []string{"r"},
				Usage:   "Talk to a running prefsd instead of a local store",
				Sources: cli.EnvVars("PREFSCTL_REMOTE"),
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "prefsd base URL used with --remote",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Admin token sent with --remote key commands",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Commands: []*cli.Command{
			getPrefsCommands(),
			getKeyCommands(),
			getTokenCommands(),
			getBrowseCommand(),
			getVersionCommand(),
		},
	}
}
