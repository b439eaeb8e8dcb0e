package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// run executes prefsctl against the JSON store at dsn and returns stdout.
func run(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	full := append([]string{"prefsctl", "--dsn", dsn, "--log-level", "error"}, args...)
	err := newApp(&buf).Run(context.Background(), full)
	return buf.String(), err
}

func mustRun(t *testing.T, dsn string, args ...string) string {
	t.Helper()
	out, err := run(t, dsn, args...)
	require.NoError(t, err, strings.Join(args, " "))
	return out
}

func newDSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs.json")
}

func TestPrefs_SetGetList(t *testing.T) {
	dsn := newDSN(t)

	mustRun(t, dsn, "prefs", "set", "--type", "int", "app.volume", "7")
	mustRun(t, dsn, "prefs", "set", "--type", "string[]", "app.tags", "a|b|c")

	assert.Equal(t, "7\n", mustRun(t, dsn, "prefs", "get", "--type", "int", "app.volume"))
	assert.Equal(t, "a|b|c\n", mustRun(t, dsn, "prefs", "get", "-t", "string[]", "app.tags"))

	var entries []models.PreferenceEntry
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, dsn, "prefs", "list", "--json")), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "app.tags", entries[0].Key)
	assert.Equal(t, "app.volume", entries[1].Key)

	table := mustRun(t, dsn, "prefs", "list")
	assert.Contains(t, table, "KEY")
	assert.Contains(t, table, "app.volume")
}

func TestPrefs_DeleteAndClear(t *testing.T) {
	dsn := newDSN(t)

	mustRun(t, dsn, "prefs", "set", "a", "1")
	mustRun(t, dsn, "prefs", "set", "b", "2")

	mustRun(t, dsn, "prefs", "delete", "a")
	_, err := run(t, dsn, "prefs", "get", "a")
	assert.Error(t, err)

	mustRun(t, dsn, "prefs", "clear")
	assert.Equal(t, "[]\n", mustRun(t, dsn, "prefs", "list", "--json"))
	assert.Equal(t, "no preferences\n", mustRun(t, dsn, "prefs", "list"))
}

func TestPrefs_WrongArgs(t *testing.T) {
	dsn := newDSN(t)

	for _, args := range [][]string{
		{"prefs", "get"},
		{"prefs", "set", "only-key"},
		{"prefs", "delete"},
		{"prefs", "encrypt"},
		{"keys", "remove"},
		{"keys", "restore"},
		{"keys", "delimiter"},
	} {
		_, err := run(t, dsn, args...)
		assert.ErrorIs(t, err, errWrongArgs, strings.Join(args, " "))
	}
}

func TestPrefs_Encrypted(t *testing.T) {
	dsn := newDSN(t)

	_, err := run(t, dsn, "prefs", "set", "--encrypt", "--type", "int", "secret", "42")
	require.Error(t, err, "no keys registered yet")

	mustRun(t, dsn, "keys", "generate")
	mustRun(t, dsn, "prefs", "set", "--encrypt", "--type", "int", "secret", "42")

	assert.Equal(t, "42\n", mustRun(t, dsn, "prefs", "get", "--encrypted", "--type", "int", "secret"))

	raw := mustRun(t, dsn, "prefs", "get", "secret")
	assert.NotEqual(t, "42\n", raw, "stored as ciphertext")

	token := strings.TrimSpace(mustRun(t, dsn, "prefs", "encrypt", "--type", "int", "42"))
	assert.NotEmpty(t, token)
	assert.Contains(t, token, "|")

	_, err = run(t, dsn, "prefs", "encrypt", "--key-index=-1", "42")
	assert.ErrorIs(t, err, errInvalidIndex)
}

func TestKeys_GenerateDeriveRemove(t *testing.T) {
	dsn := newDSN(t)

	out := mustRun(t, dsn, "keys", "generate")
	assert.True(t, strings.HasPrefix(out, "added key #0 ("), out)

	out = mustRun(t, dsn, "keys", "derive", "correct horse battery staple")
	assert.Contains(t, out, "added key #1")
	assert.Contains(t, out, "salt: ")

	var info models.KeysInfo
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, dsn, "keys", "list", "--json")), &info))
	assert.Equal(t, 2, info.Count)
	require.Len(t, info.Keys, 2)

	mustRun(t, dsn, "keys", "remove", "0")
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, dsn, "keys", "list", "--json")), &info))
	assert.Equal(t, 1, info.Count)

	_, err := run(t, dsn, "keys", "remove", "x")
	assert.ErrorIs(t, err, errInvalidIndex)

	mustRun(t, dsn, "keys", "clear")
	assert.Contains(t, mustRun(t, dsn, "keys", "list"), "credentials: 0")
}

func TestKeys_BackupRestore(t *testing.T) {
	dsn := newDSN(t)
	backup := filepath.Join(t.TempDir(), "backup.csv")

	mustRun(t, dsn, "keys", "generate")
	mustRun(t, dsn, "keys", "generate")
	mustRun(t, dsn, "prefs", "set", "--encrypt", "--key-index", "1", "token", "s3cr3t")

	out := mustRun(t, dsn, "keys", "backup", "--out", backup)
	assert.Contains(t, out, backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)

	assert.Equal(t, string(data), mustRun(t, dsn, "keys", "backup", "-o", "-"))

	mustRun(t, dsn, "keys", "clear")
	_, err = run(t, dsn, "prefs", "get", "--encrypted", "--key-index", "1", "token")
	assert.Error(t, err)

	assert.Equal(t, "restored 2 credential(s)\n", mustRun(t, dsn, "keys", "restore", backup))
	assert.Equal(t, "s3cr3t\n", mustRun(t, dsn, "prefs", "get", "--encrypted", "-k", "1", "token"))
}

func TestKeys_BackupKeepsExistingFileOnFailure(t *testing.T) {
	dsn := newDSN(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "keys.csv")
	require.NoError(t, os.WriteFile(target, []byte("previous backup\n"), 0o600))

	// empty registry: nothing to back up
	_, err := run(t, dsn, "keys", "backup", "-o", target)
	assert.ErrorIs(t, err, service.ErrInvalidBackup)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous backup\n", string(data))

	mustRun(t, dsn, "keys", "generate")
	mustRun(t, dsn, "keys", "backup", "-o", target)

	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 1)
	assert.NotContains(t, string(data), "previous backup")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestKeys_Delimiter(t *testing.T) {
	dsn := newDSN(t)

	mustRun(t, dsn, "keys", "delimiter", ";")
	mustRun(t, dsn, "prefs", "set", "--type", "int[]", "nums", "1;2;3")
	assert.Equal(t, "1;2;3\n", mustRun(t, dsn, "prefs", "get", "--type", "int[]", "nums"))

	_, err := run(t, dsn, "keys", "delimiter", "7")
	assert.Error(t, err)
	_, err = run(t, dsn, "keys", "delimiter", "e")
	assert.Error(t, err)
	assert.Equal(t, "1;2;3\n", mustRun(t, dsn, "prefs", "get", "--type", "int[]", "nums"))
}

func TestToken_Issue(t *testing.T) {
	dsn := newDSN(t)

	t.Setenv("AUTH_TOKEN_SIGN_KEY", "")
	_, err := run(t, dsn, "token", "issue")
	assert.ErrorIs(t, err, errNoSignKey)

	t.Setenv("AUTH_TOKEN_SIGN_KEY", "0123456789abcdef0123")
	out := mustRun(t, dsn, "token", "issue")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
}

func TestVersion_Local(t *testing.T) {
	out := mustRun(t, newDSN(t), "version")
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "keys-backup-20260304T050607Z.csv", backupFileName(ts))
}
