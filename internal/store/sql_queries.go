package store

import (
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

const (
	preferencesTable    = "preferences"
	encryptionKeysTable = "encryption_keys"
	settingsTable       = "settings"

	delimiterSetting = "delimiter"
)

var preferenceColumns = []string{"pref_key", "kind", "float_value", "int_value", "string_value", "updated_at"}

func buildSelectPreferencesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(preferenceColumns...).
		From(preferencesTable).
		OrderBy("pref_key").
		ToSql()
}

// buildUpsertPreferenceQuery writes p into its slot column and clears the
// other two, so a key that changes kind never keeps a stale value.
// NaN and the infinities go to string_value as codec text with a NULL
// float_value: SQLite turns NaN into NULL.
func buildUpsertPreferenceQuery(b sq.StatementBuilderType, p models.Preference) (string, []any, error) {
	var (
		floatValue  any
		intValue    any
		stringValue any
	)
	switch p.Kind {
	case models.SlotFloat:
		if f := float64(p.Float); math.IsNaN(f) || math.IsInf(f, 0) {
			stringValue = codec.EncodeFloat(p.Float)
		} else {
			floatValue = f
		}
	case models.SlotInt:
		intValue = int64(p.Int)
	default:
		stringValue = p.String
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	return b.Insert(preferencesTable).
		Columns(preferenceColumns...).
		Values(p.Key, string(p.Kind), floatValue, intValue, stringValue, updatedAt).
		Suffix(`ON CONFLICT (pref_key) DO UPDATE SET
			kind = excluded.kind,
			float_value = excluded.float_value,
			int_value = excluded.int_value,
			string_value = excluded.string_value,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildDeletePreferencesQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	return b.Delete(preferencesTable).
		Where(sq.Eq{"pref_key": keys}).
		ToSql()
}

func buildDeleteAllPreferencesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(preferencesTable).ToSql()
}

func buildSelectKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("key_bytes", "iv_bytes").
		From(encryptionKeysTable).
		OrderBy("position").
		ToSql()
}

func buildDeleteKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(encryptionKeysTable).ToSql()
}

func buildInsertKeysQuery(b sq.StatementBuilderType, records []models.KeyRecord) (string, []any, error) {
	q := b.Insert(encryptionKeysTable).Columns("position", "key_bytes", "iv_bytes")
	for i, r := range records {
		q = q.Values(i, r.Key, r.IV)
	}
	return q.ToSql()
}

func buildSelectSettingQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertSettingQuery(b sq.StatementBuilderType, name, value string) (string, []any, error) {
	return b.Insert(settingsTable).
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
		ToSql()
}
