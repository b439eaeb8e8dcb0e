package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prefs-keeper/internal/backup"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/mock"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

func newTestKeyService(t *testing.T) (KeyService, crypto.KeyRegistry, store.KeyRepository) {
	t.Helper()
	registry := crypto.NewKeyRegistry(0)
	repo := store.NewMemoryKeyRepository()
	return NewKeyService(registry, repo, logger.Nop()), registry, repo
}

// ─────────────────────────────────────────────
// LoadKeyRegistry
// ─────────────────────────────────────────────

func TestLoadKeyRegistry(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryKeyRepository()
	require.NoError(t, repo.SaveKeys(ctx, []models.KeyRecord{testRecord(1), testRecord(2)}))

	registry, err := LoadKeyRegistry(ctx, repo, ';', logger.Nop())
	require.NoError(t, err)

	count, err := registry.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, ';', registry.Delimiter(), "fallback used when nothing is stored")

	require.NoError(t, repo.SaveDelimiter(ctx, '#'))
	registry, err = LoadKeyRegistry(ctx, repo, ';', logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, '#', registry.Delimiter(), "stored delimiter wins")
}

func TestLoadKeyRegistry_InvalidStoredKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyRepository(ctrl)
	repo.EXPECT().LoadDelimiter(gomock.Any()).Return(rune(0), nil)
	repo.EXPECT().LoadKeys(gomock.Any()).Return([]models.KeyRecord{{Key: []byte{1}, IV: []byte{2}}}, nil)

	_, err := LoadKeyRegistry(context.Background(), repo, '|', logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrInvalidCredential)
}

func TestLoadKeyRegistry_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyRepository(ctrl)
	repo.EXPECT().LoadDelimiter(gomock.Any()).Return(rune(0), assert.AnError)

	_, err := LoadKeyRegistry(context.Background(), repo, '|', logger.Nop())
	assert.ErrorIs(t, err, assert.AnError)
}

// ─────────────────────────────────────────────
// Add / List / Remove / Clear
// ─────────────────────────────────────────────

func TestKeyService_AddGenerated(t *testing.T) {
	svc, registry, repo := newTestKeyService(t)
	ctx := context.Background()

	resp, err := svc.Add(ctx, models.AddKeyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Key.Index)
	assert.Empty(t, resp.Salt)

	record, err := registry.Record(0)
	require.NoError(t, err)
	assert.Equal(t, utils.KeyFingerprint(record), resp.Key.Fingerprint)

	stored, err := repo.LoadKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.KeyRecord{record}, stored)
}

// TestKeyService_AddDerived verifies that the same passphrase and salt
// produce the same credential.
func TestKeyService_AddDerived(t *testing.T) {
	svc, registry, _ := newTestKeyService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, models.AddKeyRequest{Passphrase: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, first.Salt)

	second, err := svc.Add(ctx, models.AddKeyRequest{Passphrase: "correct horse", Salt: first.Salt})
	require.NoError(t, err)
	assert.Equal(t, first.Salt, second.Salt)
	assert.Equal(t, first.Key.Fingerprint, second.Key.Fingerprint)
	assert.Equal(t, 1, second.Key.Index)

	count, err := registry.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestKeyService_AddDerived_BadSalt(t *testing.T) {
	svc, _, _ := newTestKeyService(t)

	_, err := svc.Add(context.Background(), models.AddKeyRequest{Passphrase: "p", Salt: "***"})
	assert.ErrorIs(t, err, ErrInvalidKeyRequest)

	short := base64.StdEncoding.EncodeToString([]byte{1, 2})
	_, err = svc.Add(context.Background(), models.AddKeyRequest{Passphrase: "p", Salt: short})
	assert.ErrorIs(t, err, ErrInvalidKeyRequest)
}

func TestKeyService_ListRemoveClear(t *testing.T) {
	svc, _, repo := newTestKeyService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, models.AddKeyRequest{})
		require.NoError(t, err)
	}

	info, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, info.Count)
	assert.Equal(t, "|", info.Delimiter)
	require.Len(t, info.Keys, 3)
	third := info.Keys[2].Fingerprint

	require.NoError(t, svc.Remove(ctx, 1))
	info, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Count)
	assert.Equal(t, third, info.Keys[1].Fingerprint, "later keys shift down")

	assert.ErrorIs(t, svc.Remove(ctx, 7), ErrKeyNotFound)

	require.NoError(t, svc.Clear(ctx))
	stored, err := repo.LoadKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

// TestKeyService_RollbackOnPersistFailure verifies that the registry is
// restored when the repository write fails.
func TestKeyService_RollbackOnPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyRepository(ctrl)
	registry := crypto.NewKeyRegistry(0)
	r := testRecord(5)
	require.NoError(t, registry.AddKeyAndIV(r.Key, r.IV))

	svc := NewKeyService(registry, repo, logger.Nop())
	repo.EXPECT().SaveKeys(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(2)

	err := svc.Clear(context.Background())
	assert.ErrorIs(t, err, ErrPersistingKeys)

	_, err = svc.Add(context.Background(), models.AddKeyRequest{})
	assert.ErrorIs(t, err, ErrPersistingKeys)

	assert.Equal(t, []models.KeyRecord{r}, registry.Records())
}

// ─────────────────────────────────────────────
// SetDelimiter
// ─────────────────────────────────────────────

func TestKeyService_SetDelimiter(t *testing.T) {
	svc, registry, repo := newTestKeyService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetDelimiter(ctx, ";"))
	assert.Equal(t, ';', registry.Delimiter())
	stored, err := repo.LoadDelimiter(ctx)
	require.NoError(t, err)
	assert.Equal(t, ';', stored)

	require.NoError(t, svc.SetDelimiter(ctx, ""))
	assert.Equal(t, '|', registry.Delimiter(), "empty resets to the default")

	assert.ErrorIs(t, svc.SetDelimiter(ctx, "5"), ErrInvalidKeyRequest)
	assert.ErrorIs(t, svc.SetDelimiter(ctx, ";;"), ErrInvalidKeyRequest)
	assert.Equal(t, '|', registry.Delimiter())
}

func TestKeyService_SetDelimiter_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyRepository(ctrl)
	registry := crypto.NewKeyRegistry(0)
	repo.EXPECT().SaveDelimiter(gomock.Any(), ';').Return(assert.AnError)

	svc := NewKeyService(registry, repo, logger.Nop())

	assert.ErrorIs(t, svc.SetDelimiter(context.Background(), ";"), ErrPersistingKeys)
	assert.Equal(t, '|', registry.Delimiter())
}

// ─────────────────────────────────────────────
// Backup / Restore
// ─────────────────────────────────────────────

func TestKeyService_BackupRestore(t *testing.T) {
	svc, registry, repo := newTestKeyService(t)
	ctx := context.Background()

	var empty bytes.Buffer
	assert.ErrorIs(t, svc.Backup(ctx, &empty), ErrInvalidBackup)
	assert.ErrorIs(t, svc.Backup(ctx, &empty), backup.ErrNothingToBackup)

	for i := 0; i < 2; i++ {
		_, err := svc.Add(ctx, models.AddKeyRequest{})
		require.NoError(t, err)
	}
	original := registry.Records()

	var buf bytes.Buffer
	require.NoError(t, svc.Backup(ctx, &buf))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	require.NoError(t, svc.Clear(ctx))
	_, err := svc.Add(ctx, models.AddKeyRequest{})
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, restored)
	assert.Equal(t, original, registry.Records(), "restore replaces the registry")

	stored, err := repo.LoadKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, stored)
}

func TestKeyService_Restore_Invalid(t *testing.T) {
	svc, registry, _ := newTestKeyService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, models.AddKeyRequest{})
	require.NoError(t, err)
	before := registry.Records()

	_, err = svc.Restore(ctx, strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidBackup)
	assert.ErrorIs(t, err, backup.ErrEmptyBackup)

	_, err = svc.Restore(ctx, strings.NewReader("not base64\n"))
	assert.ErrorIs(t, err, backup.ErrCorruptBackup)

	assert.Equal(t, before, registry.Records())
}
