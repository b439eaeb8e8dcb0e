package crypto

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

func testRecord(seed byte) models.KeyRecord {
	return models.KeyRecord{
		Key: bytes.Repeat([]byte{seed}, models.KeySize),
		IV:  bytes.Repeat([]byte{seed + 1}, models.IVSize),
	}
}

func TestKeyRegistry_AddKeyAndIV(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		iv      []byte
		wantErr error
	}{
		{name: "valid", key: make([]byte, 32), iv: make([]byte, 16)},
		{name: "short key", key: make([]byte, 31), iv: make([]byte, 16), wantErr: ErrInvalidCredential},
		{name: "long key", key: make([]byte, 33), iv: make([]byte, 16), wantErr: ErrInvalidCredential},
		{name: "aes-128 sized key", key: make([]byte, 16), iv: make([]byte, 16), wantErr: ErrInvalidCredential},
		{name: "short iv", key: make([]byte, 32), iv: make([]byte, 15), wantErr: ErrInvalidCredential},
		{name: "nil both", wantErr: ErrInvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewKeyRegistry(0)

			err := r.AddKeyAndIV(tt.key, tt.iv)
			count, countErr := r.Count()
			require.NoError(t, countErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, count)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestKeyRegistry_ValidateKeyAndIV_DoesNotMutate(t *testing.T) {
	r := NewKeyRegistry(0)

	assert.True(t, r.ValidateKeyAndIV(make([]byte, 32), make([]byte, 16)))
	assert.False(t, r.ValidateKeyAndIV(make([]byte, 32), make([]byte, 17)))

	count, err := r.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestKeyRegistry_GetReturnsCopies(t *testing.T) {
	r := NewKeyRegistry(0)
	rec := testRecord(1)
	require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))

	// mutating the caller's slices after Add must not leak in
	rec.Key[0] = 0xFF

	key, err := r.GetKey(0)
	require.NoError(t, err)
	assert.Equal(t, byte(1), key[0])

	key[1] = 0xFF
	again, err := r.GetKey(0)
	require.NoError(t, err)
	assert.Equal(t, byte(1), again[1])

	iv, err := r.GetIV(0)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{2}, 16), iv)
}

func TestKeyRegistry_IndexOutOfRange(t *testing.T) {
	r := NewKeyRegistry(0)
	rec := testRecord(1)
	require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))

	for _, idx := range []int{-1, 1, 100} {
		_, err := r.GetKey(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = r.GetIV(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = r.Record(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		assert.ErrorIs(t, r.RemoveAt(idx), ErrIndexOutOfRange)
	}

	count, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestKeyRegistry_RemoveAt_KeepsPairsAligned(t *testing.T) {
	r := NewKeyRegistry(0)
	for i := byte(0); i < 3; i++ {
		rec := testRecord(i * 10)
		require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))
	}

	require.NoError(t, r.RemoveAt(1))

	records := r.Records()
	require.Len(t, records, 2)
	assert.Equal(t, testRecord(0), records[0])
	assert.Equal(t, testRecord(20), records[1])
}

func TestKeyRegistry_ClearAll(t *testing.T) {
	r := NewKeyRegistry(0)
	rec := testRecord(5)
	require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))
	require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))

	r.ClearAll()

	count, err := r.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, r.Records())
}

func TestKeyRegistry_InconsistentLists(t *testing.T) {
	r := &keyRegistry{
		keys:      [][]byte{make([]byte, 32)},
		ivs:       [][]byte{},
		delimiter: models.DefaultDelimiter,
	}

	_, err := r.Count()
	assert.ErrorIs(t, err, ErrInternalInconsistency)

	_, err = r.GetKey(0)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
}

func TestKeyRegistry_ReplaceAll_AllOrNothing(t *testing.T) {
	r := NewKeyRegistry(0)
	orig := testRecord(7)
	require.NoError(t, r.AddKeyAndIV(orig.Key, orig.IV))

	bad := []models.KeyRecord{testRecord(1), {Key: make([]byte, 32), IV: make([]byte, 8)}}
	err := r.ReplaceAll(bad)
	require.ErrorIs(t, err, ErrInvalidCredential)
	assert.Equal(t, []models.KeyRecord{orig}, r.Records())

	good := []models.KeyRecord{testRecord(1), testRecord(2)}
	require.NoError(t, r.ReplaceAll(good))
	assert.Equal(t, good, r.Records())
}

func TestKeyRegistry_Delimiter(t *testing.T) {
	r := NewKeyRegistry(0)
	assert.Equal(t, '|', r.Delimiter())

	require.NoError(t, r.SetDelimiter(';'))
	assert.Equal(t, ';', r.Delimiter())

	require.NoError(t, r.SetDelimiter(0))
	assert.Equal(t, '|', r.Delimiter())

	assert.ErrorIs(t, r.SetDelimiter('7'), ErrInvalidDelimiter)
	assert.Equal(t, '|', r.Delimiter())

	assert.Equal(t, ',', NewKeyRegistry(',').Delimiter())
	assert.Equal(t, '|', NewKeyRegistry('0').Delimiter())
}

func TestKeyRegistry_SetDelimiter_RejectsNumberRunes(t *testing.T) {
	r := NewKeyRegistry(';')

	for _, d := range []rune{'-', '+', '.', 'E', 'e', 'N', 'a', 'T', '5'} {
		assert.ErrorIs(t, r.SetDelimiter(d), ErrInvalidDelimiter, "%q", d)
		assert.Equal(t, '|', NewKeyRegistry(d).Delimiter(), "%q falls back to the default", d)
	}
	assert.Equal(t, ';', r.Delimiter())
}

func TestKeyRegistry_ConcurrentAccess(t *testing.T) {
	r := NewKeyRegistry(0)
	rec := testRecord(3)
	require.NoError(t, r.AddKeyAndIV(rec.Key, rec.IV))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := r.Record(0)
				if assert.NoError(t, err) {
					assert.True(t, got.Valid())
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.AddKeyAndIV(rec.Key, rec.IV)
				_, _ = r.Count()
			}
		}()
	}
	wg.Wait()

	count, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, 1+8*100, count)
}
