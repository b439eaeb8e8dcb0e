package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

func getKeyCommands() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Administer the key registry",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List credentials by fingerprint",
				Flags:  []cli.Flag{jsonFlag()},
				Action: withBackend(runKeysList),
			},
			{
				Name:   "generate",
				Usage:  "Add a random credential",
				Action: withBackend(runKeysGenerate),
			},
			{
				Name:      "derive",
				Usage:     "Add a credential derived from a passphrase",
				ArgsUsage: "PASSPHRASE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "salt",
						Usage: "Base64 salt; a random one is picked and printed when omitted",
					},
				},
				Action: withBackend(runKeysDerive),
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove the credential at an index",
				ArgsUsage: "INDEX",
				Action:    withBackend(runKeysRemove),
			},
			{
				Name:   "clear",
				Usage:  "Remove every credential",
				Action: withBackend(runKeysClear),
			},
			{
				Name:  "backup",
				Usage: "Write the key backup file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   `Output file, "-" for stdout (default: a timestamped file in the backup dir)`,
					},
				},
				Action: withBackend(runKeysBackup),
			},
			{
				Name:      "restore",
				Usage:     "Replace every credential with the ones in a backup file",
				ArgsUsage: "FILE",
				Action:    withBackend(runKeysRestore),
			},
			{
				Name:      "delimiter",
				Usage:     "Change the sequence and token delimiter",
				ArgsUsage: "CHAR",
				Action:    withBackend(runKeysDelimiter),
			},
		},
	}
}

func runKeysList(ctx context.Context, cmd *cli.Command, b *backend) error {
	info, err := b.keys.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if info.Keys == nil {
			info.Keys = []models.KeyInfo{}
		}
		return printJSON(out(cmd), info)
	}
	printKeys(out(cmd), info)
	return nil
}

func runKeysGenerate(ctx context.Context, cmd *cli.Command, b *backend) error {
	resp, err := b.keys.Add(ctx, models.AddKeyRequest{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out(cmd), "added key #%d (%s)\n", resp.Key.Index, resp.Key.Fingerprint)
	return nil
}

func runKeysDerive(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: keys derive PASSPHRASE", errWrongArgs)
	}

	resp, err := b.keys.Add(ctx, models.AddKeyRequest{
		Passphrase: cmd.Args().First(),
		Salt:       cmd.String("salt"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out(cmd), "added key #%d (%s)\nsalt: %s\n", resp.Key.Index, resp.Key.Fingerprint, resp.Salt)
	return nil
}

func runKeysRemove(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: keys remove INDEX", errWrongArgs)
	}
	idx, err := strconv.Atoi(cmd.Args().First())
	if err != nil || idx < 0 {
		return errInvalidIndex
	}

	return b.keys.Remove(ctx, idx)
}

func runKeysClear(ctx context.Context, _ *cli.Command, b *backend) error {
	return b.keys.Clear(ctx)
}

func runKeysBackup(ctx context.Context, cmd *cli.Command, b *backend) error {
	path := cmd.String("out")
	if path == "-" {
		return b.keys.Backup(ctx, out(cmd))
	}
	if path == "" {
		path = filepath.Join(b.cfg.Backup.Dir, backupFileName(time.Now()))
	}

	// write next to the target and rename, so a failed backup never
	// touches an existing file at path
	f, err := os.CreateTemp(filepath.Dir(path), ".keys-backup-*.tmp")
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	tmp := f.Name()

	if err = b.keys.Backup(ctx, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close backup file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace backup file: %w", err)
	}

	fmt.Fprintln(out(cmd), "backup written to", path)
	return nil
}

func backupFileName(now time.Time) string {
	return "keys-backup-" + now.UTC().Format("20060102T150405Z") + ".csv"
}

func runKeysRestore(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: keys restore FILE", errWrongArgs)
	}

	var r io.Reader
	if name := cmd.Args().First(); name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open backup file: %w", err)
		}
		defer f.Close()
		r = f
	}

	n, err := b.keys.Restore(ctx, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(out(cmd), "restored %d credential(s)\n", n)
	return nil
}

func runKeysDelimiter(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: keys delimiter CHAR", errWrongArgs)
	}
	return b.keys.SetDelimiter(ctx, cmd.Args().First())
}
