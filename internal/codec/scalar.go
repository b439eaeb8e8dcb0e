// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scalar is the set of primitive value types a preference can hold.
type Scalar interface {
	bool | int32 | float32 | string
}

// EncodeBool returns "True" or "False".
func EncodeBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// DecodeBool accepts "true" and "false" in any letter case, surrounded by
// optional whitespace.
func DecodeBool(s string) (bool, error) {
	switch t := strings.TrimSpace(s); {
	case strings.EqualFold(t, "true"):
		return true, nil
	case strings.EqualFold(t, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a bool", ErrFormat, s)
	}
}

// EncodeInt returns the base-10 form of v.
func EncodeInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// DecodeInt parses a base-10 32-bit integer with an optional sign.
func DecodeInt(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int32", ErrFormat, s)
	}
	return int32(n), nil
}

// EncodeFloat returns the shortest text that parses back to exactly v.
// Plain notation is used for decimal exponents in [-4, 7), scientific
// notation with an upper-case E otherwise.
func EncodeFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 32)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 7 {
		return strings.ToUpper(sci)
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}

// DecodeFloat parses a 32-bit float. Both plain and scientific notation are
// accepted, as are "NaN", "Infinity" and "-Infinity".
func DecodeFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float32", ErrFormat, s)
	}
	return float32(f), nil
}

// Encode returns the plain token of a scalar.
func Encode[T Scalar](v T) string {
	switch x := any(v).(type) {
	case bool:
		return EncodeBool(x)
	case int32:
		return EncodeInt(x)
	case float32:
		return EncodeFloat(x)
	case string:
		return x
	}
	panic("unreachable")
}

// Decode parses the plain token of a scalar.
func Decode[T Scalar](s string) (T, error) {
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
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}
