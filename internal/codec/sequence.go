// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeSlice joins the tokens of vs with delimiter, in order.
func EncodeSlice[T Scalar](vs []T, delimiter rune) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Encode(v)
	}
	return strings.Join(parts, string(delimiter))
}

// DecodeSlice splits s on delimiter and decodes every element. An empty s
// fails with ErrEmptyValue, so an empty slice does not survive a round trip.
func DecodeSlice[T Scalar](s string, delimiter rune) ([]T, error) {
	if s == "" {
		return nil, ErrEmptyValue
	}

	parts := strings.Split(s, string(delimiter))
	out := make([]T, len(parts))
	for i, p := range parts {
		v, err := Decode[T](p)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// EncodeBytes writes every byte of b as a base-10 number joined by
// delimiter, e.g. "12|0|255".
func EncodeBytes(b []byte, delimiter rune) string {
	var sb strings.Builder
	sb.Grow(len(b) * 4)
	for i, c := range b {
		if i > 0 {
			sb.WriteRune(delimiter)
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	return sb.String()
}

// DecodeBytes reverses [EncodeBytes]. Every token must be an integer in
// 0..255.
func DecodeBytes(s string, delimiter rune) ([]byte, error) {
	if s == "" {
		return nil, ErrEmptyValue
	}

	parts := strings.Split(s, string(delimiter))
	out := make([]byte, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: byte token %d is %q", ErrFormat, i, p)
		}
		out[i] = byte(n)
	}
	return out, nil
}
