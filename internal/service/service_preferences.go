package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/prefs"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

type preferenceService struct {
	prefs *prefs.Prefs

	logger *logger.Logger
}

func NewPreferenceService(p *prefs.Prefs, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		prefs:  p,
		logger: logger,
	}
}

func (s *preferenceService) List(ctx context.Context) ([]models.PreferenceEntry, error) {
	store := s.prefs.Store()

	keys := store.Keys()
	entries := make([]models.PreferenceEntry, 0, len(keys))
	for _, key := range keys {
		entry, ok := store.Entry(key)
		if !ok {
			// deleted between Keys and Entry
			continue
		}
		entries = append(entries, models.PreferenceEntry{
			Key:       entry.Key,
			Kind:      entry.Kind,
			Raw:       entry.Raw(),
			UpdatedAt: entry.UpdatedAt,
		})
	}
	return entries, nil
}

func (s *preferenceService) Get(ctx context.Context, req models.GetPreferenceRequest) (models.TypedValue, error) {
	log := logger.FromContext(ctx)

	ops, ok := valueTypeOps[req.Type]
	if !ok {
		return models.TypedValue{}, fmt.Errorf("%w: %q", ErrUnknownValueType, req.Type)
	}

	text, err := ops.get(s.prefs, req.Key, req.Encrypted, req.KeyIndex)
	if err != nil {
		log.Debug().Err(err).
			Str("func", "preferenceService.Get").
			Str("key", req.Key).
			Str("type", string(req.Type)).
			Bool("encrypted", req.Encrypted).
			Msg("failed to read preference")
		return models.TypedValue{}, readError(err)
	}

	return models.TypedValue{Key: req.Key, Type: req.Type, Value: text}, nil
}

func (s *preferenceService) Set(ctx context.Context, key string, req models.SetPreferenceRequest) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}
	ops, ok := valueTypeOps[req.Type]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownValueType, req.Type)
	}

	if err := ops.set(s.prefs, key, req.Value, req.Encrypt, req.KeyIndex); err != nil {
		log.Err(err).
			Str("func", "preferenceService.Set").
			Str("key", key).
			Str("type", string(req.Type)).
			Msg("failed to save preference")
		return writeError(err)
	}
	return nil
}

func (s *preferenceService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.prefs.Delete(key)
	return nil
}

func (s *preferenceService) Clear(ctx context.Context) error {
	s.prefs.Store().DeleteAll()
	return nil
}

func (s *preferenceService) Flush(ctx context.Context) error {
	return s.prefs.Flush(ctx)
}

func (s *preferenceService) Encrypt(ctx context.Context, req models.EncryptRequest) (string, error) {
	ops, ok := valueTypeOps[req.Type]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownValueType, req.Type)
	}

	token, err := ops.encrypt(s.prefs, req.Value, req.KeyIndex)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceService.Encrypt").
			Str("type", string(req.Type)).
			Int("key_index", req.KeyIndex).
			Msg("failed to encrypt value")
		return "", writeError(err)
	}
	return token, nil
}

// writeError maps failures of Set and Encrypt to service errors.
func writeError(err error) error {
	var invalid *invalidValueError
	switch {
	case errors.As(err, &invalid):
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	case errors.Is(err, crypto.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	default:
		return err
	}
}

// readError maps failures of Get to service errors.
func readError(err error) error {
	switch {
	case errors.Is(err, prefs.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrPreferenceNotFound, err)
	case errors.Is(err, crypto.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	case errors.Is(err, crypto.ErrInternalInconsistency):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrUndecodableValue, err)
	}
}
