package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

var preferenceRowColumns = []string{"pref_key", "kind", "float_value", "int_value", "string_value", "updated_at"}

func newTestDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, dialect: dialect, logger: logger.Nop()}
	switch dialect {
	case DialectPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}
	return db, mock
}

func newTestPreferenceStore(t *testing.T, dialect Dialect, rows *sqlmock.Rows) (PreferenceStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t, dialect)
	mock.ExpectQuery("SELECT pref_key, kind, float_value, int_value, string_value, updated_at FROM preferences").
		WillReturnRows(rows)

	s, err := NewSQLPreferenceStore(context.Background(), db, logger.Nop())
	require.NoError(t, err)
	return s, mock
}

func TestNewSQLPreferenceStore_LoadsRows(t *testing.T) {
	now := time.Now().UTC()
	rows := sqlmock.NewRows(preferenceRowColumns).
		AddRow("level", "int", nil, int64(3), nil, now).
		AddRow("name", "string", nil, nil, "hero", now).
		AddRow("volume", "float", 0.25, nil, nil, now).
		AddRow("weird", "blob", nil, nil, "x", now)

	s, mock := newTestPreferenceStore(t, DialectSQLite, rows)

	assert.Equal(t, []string{"level", "name", "volume"}, s.Keys())
	assert.Equal(t, int32(3), s.GetInt("level", 0))
	assert.Equal(t, "hero", s.GetString("name", ""))
	assert.Equal(t, float32(0.25), s.GetFloat("volume", 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLPreferenceStore_QueryError(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("no such table"))

	_, err := NewSQLPreferenceStore(context.Background(), db, logger.Nop())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNewSQLPreferenceStore_ScanError(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"pref_key"}).AddRow("k"))

	_, err := NewSQLPreferenceStore(context.Background(), db, logger.Nop())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSQLPreferenceStore_Save_FlushesChangesInTransaction(t *testing.T) {
	rows := sqlmock.NewRows(preferenceRowColumns).
		AddRow("old", "int", nil, int64(1), nil, time.Now())
	s, mock := newTestPreferenceStore(t, DialectSQLite, rows)

	s.DeleteKey("old")
	s.SetInt("score", 42)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM preferences WHERE pref_key IN \(\?\)`).
		WithArgs("old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO preferences \(pref_key,kind,float_value,int_value,string_value,updated_at\) VALUES \(\?,\?,\?,\?,\?,\?\) ON CONFLICT \(pref_key\) DO UPDATE`).
		WithArgs("score", "int", nil, int64(42), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background()))

	// nothing pending: no second transaction
	require.NoError(t, s.Save(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_Save_DeleteAll(t *testing.T) {
	s, mock := newTestPreferenceStore(t, DialectPostgres, sqlmock.NewRows(preferenceRowColumns))

	s.SetString("a", "x")
	s.DeleteAll()
	s.SetFloat("b", 1.5)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM preferences`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO preferences .* VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs("b", "float", float64(1.5), nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_Save_FailureKeepsChangesPending(t *testing.T) {
	s, mock := newTestPreferenceStore(t, DialectSQLite, sqlmock.NewRows(preferenceRowColumns))

	s.SetString("name", "hero")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Save(context.Background())
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.Equal(t, "hero", s.GetString("name", ""))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("name", "string", nil, nil, "hero", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_Save_RetriesRetryablePostgresError(t *testing.T) {
	s, mock := newTestPreferenceStore(t, DialectPostgres, sqlmock.NewRows(preferenceRowColumns))

	s.SetInt("k", 1)

	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_Save_DoesNotRetryNonRetryable(t *testing.T) {
	s, mock := newTestPreferenceStore(t, DialectPostgres, sqlmock.NewRows(preferenceRowColumns))

	s.SetInt("k", 1)

	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := s.Save(context.Background())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLPreferenceStore_Save_CommitError(t *testing.T) {
	s, mock := newTestPreferenceStore(t, DialectSQLite, sqlmock.NewRows(preferenceRowColumns))
	s.SetInt("k", 1)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(sql.ErrTxDone)

	assert.ErrorIs(t, s.Save(context.Background()), ErrCommitingTransaction)
}

func TestClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, NonRetryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	sqlite := NewSQLiteErrorClassifier()
	assert.Equal(t, NonRetryable, sqlite.Classify(errors.New("plain")))
}

func TestPreferenceRowsRoundTripModels(t *testing.T) {
	p := models.Preference{Key: "k", Kind: models.SlotFloat, Float: 2.5}
	query, args, err := buildUpsertPreferenceQuery(sqliteBuilder(), p)
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (pref_key)")
	require.Len(t, args, 6)
	assert.Equal(t, "k", args[0])
	assert.Equal(t, "float", args[1])
	assert.Equal(t, float64(2.5), args[2])
	assert.Nil(t, args[3])
	assert.Nil(t, args[4])
}

func TestSQLPreferenceStore_NonFiniteFloatsUseStringColumn(t *testing.T) {
	tests := []struct {
		name  string
		value float32
		text  string
	}{
		{name: "NaN", value: float32(math.NaN()), text: "NaN"},
		{name: "+Inf", value: float32(math.Inf(1)), text: "Infinity"},
		{name: "-Inf", value: float32(math.Inf(-1)), text: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Preference{Key: "k", Kind: models.SlotFloat, Float: tt.value}
			_, args, err := buildUpsertPreferenceQuery(sqliteBuilder(), p)
			require.NoError(t, err)
			assert.Nil(t, args[2])
			assert.Nil(t, args[3])
			assert.Equal(t, tt.text, args[4])
		})
	}
}

func TestNewSQLPreferenceStore_LoadsNonFiniteFloats(t *testing.T) {
	now := time.Now().UTC()
	rows := sqlmock.NewRows(preferenceRowColumns).
		AddRow("nan", "float", nil, nil, "NaN", now).
		AddRow("ninf", "float", nil, nil, "-Infinity", now).
		AddRow("broken", "float", nil, nil, "loud", now).
		AddRow("zero", "float", nil, nil, nil, now)

	s, mock := newTestPreferenceStore(t, DialectSQLite, rows)

	assert.Equal(t, []string{"nan", "ninf", "zero"}, s.Keys())
	assert.True(t, math.IsNaN(float64(s.GetFloat("nan", 0))))
	assert.True(t, math.IsInf(float64(s.GetFloat("ninf", 0)), -1))
	assert.Equal(t, float32(0), s.GetFloat("zero", 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
