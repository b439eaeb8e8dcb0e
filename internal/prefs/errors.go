// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prefs

import "errors"

var (
	// ErrNotFound is returned by Fetch when the key is not in the store.
	ErrNotFound = errors.New("preference not found")

	// ErrSlotMismatch is returned by Fetch when the key holds a native slot
	// other than the one the requested type is saved in.
	ErrSlotMismatch = errors.New("preference is stored in a different slot")

	// ErrDuplicateField is returned by Bind for a declaration name that is
	// already bound.
	ErrDuplicateField = errors.New("field is already bound")
)
