package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptCBC_RoundTrip(t *testing.T) {
	rec := testRecord(9)

	for _, plaintext := range [][]byte{
		{},
		[]byte("a"),
		[]byte("exactly 16 bytes"),
		bytes.Repeat([]byte("x"), 100),
	} {
		ct, err := EncryptCBC(plaintext, rec.Key, rec.IV)
		require.NoError(t, err)
		assert.Zero(t, len(ct)%16)
		assert.Greater(t, len(ct), len(plaintext))

		pt, err := DecryptCBC(ct, rec.Key, rec.IV)
		require.NoError(t, err)
		assert.Equal(t, plaintext, append([]byte{}, pt...))
	}
}

func TestEncryptCBC_FullBlockGetsExtraPadding(t *testing.T) {
	rec := testRecord(1)

	ct, err := EncryptCBC(bytes.Repeat([]byte{'a'}, 16), rec.Key, rec.IV)
	require.NoError(t, err)
	assert.Len(t, ct, 32)
}

func TestEncryptCBC_Deterministic(t *testing.T) {
	rec := testRecord(4)

	a, err := EncryptString("42", rec)
	require.NoError(t, err)
	b, err := EncryptString("42", rec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecryptCBC_Errors(t *testing.T) {
	rec := testRecord(2)

	_, err := DecryptCBC(nil, rec.Key, rec.IV)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = DecryptCBC(make([]byte, 15), rec.Key, rec.IV)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = DecryptCBC(make([]byte, 16), rec.Key, make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = EncryptCBC([]byte("x"), make([]byte, 7), rec.IV)
	assert.Error(t, err)
}

func TestDecryptString_WrongKey(t *testing.T) {
	ct, err := EncryptString("hello world", testRecord(1))
	require.NoError(t, err)

	// a wrong key yields garbage whose padding almost never checks out
	got, err := DecryptString(ct, testRecord(50))
	if err == nil {
		assert.NotEqual(t, "hello world", got)
	} else {
		assert.ErrorIs(t, err, ErrInvalidPadding)
	}
}

func TestPKCS7Unpad(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr bool
	}{
		{name: "one byte pad", in: append(bytes.Repeat([]byte{'a'}, 15), 1), want: bytes.Repeat([]byte{'a'}, 15)},
		{name: "full block pad", in: bytes.Repeat([]byte{16}, 16), want: []byte{}},
		{name: "zero pad", in: append(bytes.Repeat([]byte{'a'}, 15), 0), wantErr: true},
		{name: "pad too large", in: append(bytes.Repeat([]byte{'a'}, 15), 17), wantErr: true},
		{name: "inconsistent pad", in: append(bytes.Repeat([]byte{'a'}, 14), 3, 2), wantErr: true},
		{name: "empty", in: []byte{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.in, 16)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
