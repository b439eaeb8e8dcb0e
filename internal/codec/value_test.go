package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T Value](t *testing.T, v T) {
	t.Helper()

	got, err := DecodeValue[T](EncodeValue(v, '|'), '|')
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestValue_RoundTrip(t *testing.T) {
	roundTrip(t, true)
	roundTrip(t, false)
	roundTrip(t, int32(42))
	roundTrip(t, float32(3.14))
	roundTrip(t, "plain string")
	roundTrip(t, "")
	roundTrip(t, []bool{true, false})
	roundTrip(t, []int32{1, 2, 3})
	roundTrip(t, []float32{0.25, -8})
	roundTrip(t, []string{"a", "b", "c"})
}

func TestDecodeValue_EmptySequence(t *testing.T) {
	_, err := DecodeValue[[]int32]("", '|')
	assert.ErrorIs(t, err, ErrEmptyValue)

	s, err := DecodeValue[string]("", '|')
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestIsSequence(t *testing.T) {
	assert.False(t, IsSequence[bool]())
	assert.False(t, IsSequence[string]())
	assert.True(t, IsSequence[[]string]())
	assert.True(t, IsSequence[[]float32]())
}
