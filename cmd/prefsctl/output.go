package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

func jsonFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}
}

func out(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func printEntries(w io.Writer, entries []models.PreferenceEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no preferences")
		return
	}

	t := newTable("KEY", "SLOT", "RAW")
	for _, e := range entries {
		t.Row(e.Key, string(e.Kind), e.Raw)
	}
	fmt.Fprintln(w, t.Render())
}

func printKeys(w io.Writer, info models.KeysInfo) {
	fmt.Fprintf(w, "credentials: %d, delimiter: %q\n", info.Count, info.Delimiter)
	if len(info.Keys) == 0 {
		return
	}

	t := newTable("INDEX", "FINGERPRINT")
	for _, k := range info.Keys {
		t.Row(strconv.Itoa(k.Index), k.Fingerprint)
	}
	fmt.Fprintln(w, t.Render())
}
