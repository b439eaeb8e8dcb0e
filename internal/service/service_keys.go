package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/go-prefs-keeper/internal/backup"
	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// keyService mutates the in-memory registry and writes the result through
// to the key repository. A mutation whose write fails is rolled back, so
// the registry never drifts from what is persisted.
type keyService struct {
	// mu serializes mutate-then-persist sequences.
	mu sync.Mutex

	registry   crypto.KeyRegistry
	repository store.KeyRepository
	deriver    *crypto.KeyDeriver

	logger *logger.Logger
}

func NewKeyService(registry crypto.KeyRegistry, repository store.KeyRepository, logger *logger.Logger) KeyService {
	return &keyService{
		registry:   registry,
		repository: repository,
		deriver:    crypto.NewKeyDeriver(),
		logger:     logger,
	}
}

// LoadKeyRegistry builds a registry from the credentials and delimiter in
// repository. fallback is used when no delimiter was ever saved.
func LoadKeyRegistry(ctx context.Context, repository store.KeyRepository, fallback rune, log *logger.Logger) (crypto.KeyRegistry, error) {
	delimiter, err := repository.LoadDelimiter(ctx)
	if err != nil {
		return nil, fmt.Errorf("load delimiter: %w", err)
	}
	if delimiter == 0 {
		delimiter = fallback
	}

	registry := crypto.NewKeyRegistry(0)
	if err = registry.SetDelimiter(delimiter); err != nil {
		return nil, err
	}

	records, err := repository.LoadKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("load keys: %w", err)
	}
	if err = registry.ReplaceAll(records); err != nil {
		return nil, fmt.Errorf("stored keys are invalid: %w", err)
	}

	log.Info().
		Str("func", "service.LoadKeyRegistry").
		Int("keys", len(records)).
		Str("delimiter", string(delimiter)).
		Msg("key registry loaded")
	return registry, nil
}

func (s *keyService) List(ctx context.Context) (models.KeysInfo, error) {
	count, err := s.registry.Count()
	if err != nil {
		return models.KeysInfo{}, err
	}
	return models.KeysInfo{
		Count:     count,
		Delimiter: string(s.registry.Delimiter()),
		Keys:      utils.KeyInfos(s.registry.Records()),
	}, nil
}

func (s *keyService) Add(ctx context.Context, req models.AddKeyRequest) (models.AddKeyResponse, error) {
	var (
		record models.KeyRecord
		salt   []byte
		err    error
	)
	if req.Passphrase == "" {
		record, err = crypto.GenerateKeyAndIV()
	} else {
		salt, err = s.salt(req.Salt)
		if err == nil {
			record, err = s.deriver.Derive(req.Passphrase, salt)
		}
	}
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidCredential) {
			return models.AddKeyResponse{}, fmt.Errorf("%w: %w", ErrInvalidKeyRequest, err)
		}
		return models.AddKeyResponse{}, err
	}

	var index int
	err = s.mutate(ctx, "keyService.Add", func() error {
		if err := s.registry.AddKeyAndIV(record.Key, record.IV); err != nil {
			return err
		}
		count, err := s.registry.Count()
		index = count - 1
		return err
	})
	if err != nil {
		return models.AddKeyResponse{}, err
	}

	resp := models.AddKeyResponse{
		Key: models.KeyInfo{Index: index, Fingerprint: utils.KeyFingerprint(record)},
	}
	if salt != nil {
		resp.Salt = base64.StdEncoding.EncodeToString(salt)
	}
	return resp, nil
}

func (s *keyService) salt(encoded string) ([]byte, error) {
	if encoded == "" {
		return crypto.GenerateSalt()
	}
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %w", ErrInvalidKeyRequest, err)
	}
	return salt, nil
}

func (s *keyService) Remove(ctx context.Context, index int) error {
	err := s.mutate(ctx, "keyService.Remove", func() error {
		return s.registry.RemoveAt(index)
	})
	if errors.Is(err, crypto.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}
	return err
}

func (s *keyService) Clear(ctx context.Context) error {
	return s.mutate(ctx, "keyService.Clear", func() error {
		s.registry.ClearAll()
		return nil
	})
}

func (s *keyService) SetDelimiter(ctx context.Context, delimiter string) error {
	var d rune
	switch utf8.RuneCountInString(delimiter) {
	case 0:
	case 1:
		d, _ = utf8.DecodeRuneInString(delimiter)
	default:
		return fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalidKeyRequest, delimiter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.registry.Delimiter()
	if err := s.registry.SetDelimiter(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeyRequest, err)
	}
	if err := s.repository.SaveDelimiter(ctx, s.registry.Delimiter()); err != nil {
		_ = s.registry.SetDelimiter(previous)
		s.logger.Err(err).Str("func", "keyService.SetDelimiter").Msg("failed to persist delimiter")
		return fmt.Errorf("%w: %w", ErrPersistingKeys, err)
	}
	return nil
}

func (s *keyService) Backup(ctx context.Context, w io.Writer) error {
	err := backup.Export(w, s.registry)
	if errors.Is(err, backup.ErrNothingToBackup) {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	return err
}

func (s *keyService) Restore(ctx context.Context, r io.Reader) (int, error) {
	var restored int
	err := s.mutate(ctx, "keyService.Restore", func() error {
		var err error
		restored, err = backup.Import(r, s.registry)
		return err
	})
	if errors.Is(err, backup.ErrEmptyBackup) || errors.Is(err, backup.ErrCorruptBackup) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("func", "keyService.Restore").Int("restored", restored).Msg("keys restored from backup")
	return restored, nil
}

// mutate applies fn to the registry and persists the result. If fn fails
// nothing is persisted; if persisting fails the registry is restored to
// its state before fn.
func (s *keyService) mutate(ctx context.Context, funcName string, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.registry.Records()
	if err := fn(); err != nil {
		return err
	}

	if err := s.repository.SaveKeys(ctx, s.registry.Records()); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to persist keys, rolling back")
		if rbErr := s.registry.ReplaceAll(snapshot); rbErr != nil {
			s.logger.Err(rbErr).Str("func", funcName).Msg("rollback failed")
		}
		return fmt.Errorf("%w: %w", ErrPersistingKeys, err)
	}
	return nil
}
