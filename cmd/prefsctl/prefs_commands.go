package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

func typeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Value:   string(models.TypeString),
		Usage:   "Value type: " + typeList(),
	}
}

func keyIndexFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "key-index",
		Aliases: []string{"k"},
		Usage:   "Registry index of the credential (default: configured default key index)",
	}
}

func typeList() string {
	names := make([]string, len(models.ValueTypes))
	for i, t := range models.ValueTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func getPrefsCommands() *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "Read and write preferences",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print a preference decoded as --type",
				ArgsUsage: "KEY",
				Flags: []cli.Flag{
					typeFlag(),
					&cli.BoolFlag{
						Name:    "encrypted",
						Aliases: []string{"e"},
						Usage:   "The value is stored encrypted",
					},
					keyIndexFlag(),
				},
				Action: withBackend(runPrefsGet),
			},
			{
				Name:      "set",
				Usage:     "Store a value under a key",
				ArgsUsage: "KEY VALUE",
				Flags: []cli.Flag{
					typeFlag(),
					&cli.BoolFlag{
						Name:    "encrypt",
						Aliases: []string{"e"},
						Usage:   "Store the value encrypted",
					},
					keyIndexFlag(),
				},
				Action: withBackend(runPrefsSet),
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Remove a preference",
				ArgsUsage: "KEY",
				Action:    withBackend(runPrefsDelete),
			},
			{
				Name:   "list",
				Usage:  "List stored preferences",
				Flags:  []cli.Flag{jsonFlag()},
				Action: withBackend(runPrefsList),
			},
			{
				Name:   "clear",
				Usage:  "Remove every preference",
				Action: withBackend(runPrefsClear),
			},
			{
				Name:      "encrypt",
				Usage:     "Print the ciphertext token of a value without storing it",
				ArgsUsage: "VALUE",
				Flags:     []cli.Flag{typeFlag(), keyIndexFlag()},
				Action:    withBackend(runPrefsEncrypt),
			},
		},
	}
}

func runPrefsGet(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: prefs get KEY", errWrongArgs)
	}

	req := models.GetPreferenceRequest{
		Key:       cmd.Args().First(),
		Type:      models.ValueType(cmd.String("type")),
		Encrypted: cmd.Bool("encrypted"),
	}
	if req.Encrypted {
		idx, err := b.keyIndex(cmd)
		if err != nil {
			return err
		}
		req.KeyIndex = idx
	}

	value, err := b.prefs.Get(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), value.Value)
	return nil
}

func runPrefsSet(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("%w: prefs set KEY VALUE", errWrongArgs)
	}

	req := models.SetPreferenceRequest{
		Type:    models.ValueType(cmd.String("type")),
		Value:   cmd.Args().Get(1),
		Encrypt: cmd.Bool("encrypt"),
	}
	if req.Encrypt {
		idx, err := b.keyIndex(cmd)
		if err != nil {
			return err
		}
		req.KeyIndex = idx
	}

	if err := b.prefs.Set(ctx, cmd.Args().First(), req); err != nil {
		return err
	}
	return b.prefs.Flush(ctx)
}

func runPrefsDelete(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: prefs delete KEY", errWrongArgs)
	}

	if err := b.prefs.Delete(ctx, cmd.Args().First()); err != nil {
		return err
	}
	return b.prefs.Flush(ctx)
}

func runPrefsList(ctx context.Context, cmd *cli.Command, b *backend) error {
	entries, err := b.prefs.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if entries == nil {
			entries = []models.PreferenceEntry{}
		}
		return printJSON(out(cmd), entries)
	}
	printEntries(out(cmd), entries)
	return nil
}

func runPrefsClear(ctx context.Context, cmd *cli.Command, b *backend) error {
	if err := b.prefs.Clear(ctx); err != nil {
		return err
	}
	return b.prefs.Flush(ctx)
}

func runPrefsEncrypt(ctx context.Context, cmd *cli.Command, b *backend) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: prefs encrypt VALUE", errWrongArgs)
	}

	idx, err := b.keyIndex(cmd)
	if err != nil {
		return err
	}

	token, err := b.prefs.Encrypt(ctx, models.EncryptRequest{
		Type:     models.ValueType(cmd.String("type")),
		Value:    cmd.Args().First(),
		KeyIndex: idx,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), token)
	return nil
}
