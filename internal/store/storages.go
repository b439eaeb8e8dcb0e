package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

// Storages groups the preference store and the key repository opened from
// one DSN.
type Storages struct {
	Preferences PreferenceStore
	Keys        KeyRepository

	db *DB
}

// NewStorages picks a backend from cfg.DB.DSN:
//   - "" or "memory": process memory only;
//   - "postgres://..." or "postgresql://...": PostgreSQL;
//   - a path ending in ".json": a JSON preference file;
//   - anything else: a SQLite database file (or "file:" DSN).
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	log.Info().Str("func", "NewStorages").Str("backend", backendName(dsn)).Msg("creating new storages...")

	switch {
	case dsn == "" || dsn == "memory":
		return &Storages{
			Preferences: NewMemoryStore(),
			Keys:        NewMemoryKeyRepository(),
		}, nil

	case strings.HasSuffix(dsn, ".json"):
		fs, err := NewFileStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("open preference file: %w", err)
		}
		return &Storages{Preferences: fs, Keys: fs}, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return newSQLStorages(ctx, db, log)

	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)

	default:
		db, err := NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return newSQLStorages(ctx, db, log)
	}
}

func newSQLStorages(ctx context.Context, db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs, err := NewSQLPreferenceStore(ctx, db, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Preferences: prefs,
		Keys:        NewKeyRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the database connection, if any. Unsaved preference
// changes are not flushed.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func backendName(dsn string) string {
	switch {
	case dsn == "" || dsn == "memory":
		return "memory"
	case strings.HasSuffix(dsn, ".json"):
		return "file"
	case strings.HasPrefix(dsn, "postgres"):
		return "postgres"
	default:
		return "sqlite"
	}
}
