// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

// Value is every type a preference can hold: a scalar or a homogeneous
// slice of scalars.
type Value interface {
	Scalar | []bool | []int32 | []float32 | []string
}

// EncodeValue returns the plain token of v. delimiter is only used for
// slices.
func EncodeValue[T Value](v T, delimiter rune) string {
	switch x := any(v).(type) {
	case bool:
		return EncodeBool(x)
	case int32:
		return EncodeInt(x)
	case float32:
		return EncodeFloat(x)
	case string:
		return x
	case []bool:
		return EncodeSlice(x, delimiter)
	case []int32:
		return EncodeSlice(x, delimiter)
	case []float32:
		return EncodeSlice(x, delimiter)
	case []string:
		return EncodeSlice(x, delimiter)
	}
	panic("unreachable")
}

// DecodeValue parses a plain token into T.
func DecodeValue[T Value](s string, delimiter rune) (T, error) {
	var (
		zero T
		v    any
		err  error
	)

	switch any(zero).(type) {
	case bool:
		v, err = DecodeBool(s)
	case int32:
		v, err = DecodeInt(s)
	case float32:
		v, err = DecodeFloat(s)
	case string:
		v = s
	case []bool:
		v, err = DecodeSlice[bool](s, delimiter)
	case []int32:
		v, err = DecodeSlice[int32](s, delimiter)
	case []float32:
		v, err = DecodeSlice[float32](s, delimiter)
	case []string:
		v, err = DecodeSlice[string](s, delimiter)
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// IsSequence reports whether T is a slice type.
func IsSequence[T Value]() bool {
	var zero T
	switch any(zero).(type) {
	case []bool, []int32, []float32, []string:
		return true
	default:
		return false
	}
}
