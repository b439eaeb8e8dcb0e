// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// SlotKind is one of the native storage slots of a preference store.
// Platform preference stores only know floats, 32-bit ints and strings,
// every other value type is stored in the string slot.
type SlotKind string

const (
	SlotFloat  SlotKind = "float"
	SlotInt    SlotKind = "int"
	SlotString SlotKind = "string"
)

// Valid reports whether k is one of the known slot kinds.
func (k SlotKind) Valid() bool {
	switch k {
	case SlotFloat, SlotInt, SlotString:
		return true
	default:
		return false
	}
}

// Preference is a single stored entry. Only the field matching Kind is
// meaningful.
type Preference struct {
	Key       string    `json:"key"`
	Kind      SlotKind  `json:"kind"`
	Float     float32   `json:"float,omitempty"`
	Int       int32     `json:"int,omitempty"`
	String    string    `json:"string,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Raw returns the stored value rendered as text, the way a store browser
// shows it.
func (p Preference) Raw() string {
	switch p.Kind {
	case SlotFloat:
		return strconv.FormatFloat(float64(p.Float), 'g', -1, 32)
	case SlotInt:
		return strconv.FormatInt(int64(p.Int), 10)
	default:
		return p.String
	}
}
