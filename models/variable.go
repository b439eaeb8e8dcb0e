// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VariableData is the declaration of one persisted field as emitted by the
// code generator: the field is grouped under Category, saved under Name and
// optionally encrypted with the registry key at KeyIndex.
type VariableData struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Save     bool   `json:"save"`
	Encrypt  bool   `json:"encrypt"`
	KeyIndex int    `json:"key_index"`
}

// PrefsKey is the preference store key the field is saved under.
func (v VariableData) PrefsKey() string {
	return v.Name
}

// Equals matches declarations by name only.
func (v VariableData) Equals(other VariableData) bool {
	return v.Name == other.Name
}
