// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// sqlPreferenceStore serves reads from the cache and writes the pending
// changes to the preferences table in one transaction on Save.
type sqlPreferenceStore struct {
	*prefsCache

	db     *DB
	logger *logger.Logger

	flushMu sync.Mutex
}

// NewSQLPreferenceStore loads every stored preference into memory and
// returns a PreferenceStore backed by db.
func NewSQLPreferenceStore(ctx context.Context, db *DB, log *logger.Logger) (PreferenceStore, error) {
	s := &sqlPreferenceStore{
		prefsCache: newPrefsCache(),
		db:         db,
		logger:     log,
	}

	prefs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	s.fill(prefs)

	log.Debug().Str("func", "NewSQLPreferenceStore").Int("count", len(prefs)).Msg("preferences loaded")
	return s, nil
}

func (s *sqlPreferenceStore) loadAll(ctx context.Context) ([]models.Preference, error) {
	query, args, err := buildSelectPreferencesQuery(s.db.builder())
	if err != nil {
		s.logger.Err(err).Str("func", "sqlPreferenceStore.loadAll").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlPreferenceStore.loadAll").Msg("failed to query preferences")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var prefs []models.Preference
	for rows.Next() {
		var (
			p           models.Preference
			kind        string
			floatValue  sql.NullFloat64
			intValue    sql.NullInt64
			stringValue sql.NullString
			updatedAt   time.Time
		)
		if err = rows.Scan(&p.Key, &kind, &floatValue, &intValue, &stringValue, &updatedAt); err != nil {
			s.logger.Err(err).Str("func", "sqlPreferenceStore.loadAll").Msg("failed to scan preference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		p.Kind = models.SlotKind(kind)
		p.Float = float32(floatValue.Float64)
		p.Int = int32(intValue.Int64)
		p.String = stringValue.String
		p.UpdatedAt = updatedAt
		if !p.Kind.Valid() {
			s.logger.Warn().Str("func", "sqlPreferenceStore.loadAll").
				Str("key", p.Key).Str("kind", kind).Msg("skipping preference with unknown kind")
			continue
		}
		if p.Kind == models.SlotFloat && !floatValue.Valid && stringValue.Valid {
			// non-finite float kept as text, see buildUpsertPreferenceQuery
			f, err := codec.DecodeFloat(stringValue.String)
			if err != nil {
				s.logger.Warn().Err(err).Str("func", "sqlPreferenceStore.loadAll").
					Str("key", p.Key).Msg("skipping float preference with unreadable value")
				continue
			}
			p.Float = f
			p.String = ""
		}
		prefs = append(prefs, p)
	}
	if err = rows.Err(); err != nil {
		s.logger.Err(err).Str("func", "sqlPreferenceStore.loadAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prefs, nil
}

// Save implements [PreferenceStore]. A failed flush keeps the changes
// pending for the next Save.
func (s *sqlPreferenceStore) Save(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	cs := s.takeChanges()
	if cs.empty() {
		return nil
	}

	err := s.db.withRetry(ctx, "sqlPreferenceStore.Save", func(ctx context.Context) error {
		return s.flush(ctx, cs)
	})
	if err != nil {
		s.restoreChanges(cs)
		return err
	}

	s.logger.Debug().Str("func", "sqlPreferenceStore.Save").
		Bool("cleared", cs.cleared).
		Int("upserts", len(cs.upserts)).
		Int("deletes", len(cs.deletes)).
		Msg("preferences flushed")
	return nil
}

func (s *sqlPreferenceStore) flush(ctx context.Context, cs changeSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlPreferenceStore.flush").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	b := s.db.builder()
	var queries []func() (string, []any, error)

	if cs.cleared {
		queries = append(queries, func() (string, []any, error) { return buildDeleteAllPreferencesQuery(b) })
	}
	if len(cs.deletes) > 0 {
		queries = append(queries, func() (string, []any, error) { return buildDeletePreferencesQuery(b, cs.deletes) })
	}
	for _, p := range cs.upserts {
		queries = append(queries, func() (string, []any, error) { return buildUpsertPreferenceQuery(b, p) })
	}

	for _, build := range queries {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("func", "sqlPreferenceStore.flush").Msg("failed to execute statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqlPreferenceStore.flush").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
