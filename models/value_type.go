// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValueType names a supported value type on the dynamic surfaces (CLI,
// REST API). Array and list containers share the slice form.
type ValueType string

const (
	TypeBool        ValueType = "bool"
	TypeInt         ValueType = "int"
	TypeFloat       ValueType = "float"
	TypeString      ValueType = "string"
	TypeBoolArray   ValueType = "bool[]"
	TypeIntArray    ValueType = "int[]"
	TypeFloatArray  ValueType = "float[]"
	TypeStringArray ValueType = "string[]"
)

// ValueTypes lists every supported ValueType.
var ValueTypes = []ValueType{
	TypeBool, TypeInt, TypeFloat, TypeString,
	TypeBoolArray, TypeIntArray, TypeFloatArray, TypeStringArray,
}

// Valid reports whether t is a supported ValueType.
func (t ValueType) Valid() bool {
	for _, v := range ValueTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsSequence reports whether t is a homogeneous sequence type.
func (t ValueType) IsSequence() bool {
	switch t {
	case TypeBoolArray, TypeIntArray, TypeFloatArray, TypeStringArray:
		return true
	default:
		return false
	}
}
