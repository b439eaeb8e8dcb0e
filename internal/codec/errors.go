// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrFormat is returned when stored text does not parse as the expected
	// type, including byte tokens outside 0..255.
	ErrFormat = errors.New("value has invalid format")

	// ErrEmptyValue is returned when a sequence or byte token was expected
	// but the stored text is empty.
	ErrEmptyValue = errors.New("value is empty")
)
