package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

type keyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewKeyRepository(db *DB, log *logger.Logger) KeyRepository {
	return &keyRepository{db: db, logger: log}
}

func (k *keyRepository) LoadKeys(ctx context.Context) ([]models.KeyRecord, error) {
	query, args, err := buildSelectKeysQuery(k.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := k.db.QueryContext(ctx, query, args...)
	if err != nil {
		k.logger.Err(err).Str("func", "keyRepository.LoadKeys").Msg("failed to query encryption keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.KeyRecord, 0)
	for rows.Next() {
		var r models.KeyRecord
		if err = rows.Scan(&r.Key, &r.IV); err != nil {
			k.logger.Err(err).Str("func", "keyRepository.LoadKeys").Msg("failed to scan key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (k *keyRepository) SaveKeys(ctx context.Context, records []models.KeyRecord) error {
	return k.db.withRetry(ctx, "keyRepository.SaveKeys", func(ctx context.Context) error {
		tx, err := k.db.BeginTx(ctx, nil)
		if err != nil {
			k.logger.Err(err).Str("func", "keyRepository.SaveKeys").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		query, args, err := buildDeleteKeysQuery(k.db.builder())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			k.logger.Err(err).Str("func", "keyRepository.SaveKeys").Msg("failed to delete encryption keys")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(records) > 0 {
			query, args, err = buildInsertKeysQuery(k.db.builder(), records)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				k.logger.Err(err).Str("func", "keyRepository.SaveKeys").Msg("failed to insert encryption keys")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (k *keyRepository) LoadDelimiter(ctx context.Context) (rune, error) {
	query, args, err := buildSelectSettingQuery(k.db.builder(), delimiterSetting)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = k.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		k.logger.Err(err).Str("func", "keyRepository.LoadDelimiter").Msg("failed to query delimiter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return 0, nil
	}
	return r, nil
}

func (k *keyRepository) SaveDelimiter(ctx context.Context, delimiter rune) error {
	query, args, err := buildUpsertSettingQuery(k.db.builder(), delimiterSetting, string(delimiter))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return k.db.withRetry(ctx, "keyRepository.SaveDelimiter", func(ctx context.Context) error {
		if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
			k.logger.Err(err).Str("func", "keyRepository.SaveDelimiter").Msg("failed to save delimiter")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
