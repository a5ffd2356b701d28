// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gentype provides the generic GLSL type families
// (genFType, genIType, ...) and the concrete scalar, vector,
// and matrix types they stand for.
package gentype

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrUnknownFamily is returned when a type family tag
	// has no scalar base type.
	ErrUnknownFamily = errors.New("gentype: unknown type family")

	// ErrInvalidDimension is returned when a vector dimension
	// is outside 1-4 or a matrix dimension is outside 2-4.
	ErrInvalidDimension = errors.New("gentype: invalid dimension")
)

// Family is a scalar type family. Each family has a vector
// prefix, a scalar base type, and the feature guards needed
// for its types to be legal.
type Family int32 //enums:enum

const (
	// Float is the plain 32-bit floating point family (vec).
	Float Family = iota

	// Double is the double precision family (dvec).
	Double

	// Int is the plain signed integer family (ivec).
	Int

	// Uint is the plain unsigned integer family (uvec).
	Uint

	// Bool is the boolean family (bvec).
	Bool

	// Int8 is the explicit 8-bit signed integer family (i8vec).
	Int8

	// Int16 is the explicit 16-bit signed integer family (i16vec).
	Int16

	// Int32 is the explicit 32-bit signed integer family (i32vec).
	Int32

	// Int64 is the explicit 64-bit signed integer family (i64vec).
	Int64

	// Uint8 is the explicit 8-bit unsigned integer family (u8vec).
	Uint8

	// Uint16 is the explicit 16-bit unsigned integer family (u16vec).
	Uint16

	// Uint32 is the explicit 32-bit unsigned integer family (u32vec).
	Uint32

	// Uint64 is the explicit 64-bit unsigned integer family (u64vec).
	Uint64

	// Float16 is the explicit half precision family (f16vec).
	Float16

	// Float32 is the explicit 32-bit floating point family (f32vec).
	Float32
)

type familyInfo struct {
	prefix string
	scalar string
	guard  string
}

var families = [FamilyN]familyInfo{
	Float:   {"", "float", ""},
	Double:  {"d", "double", ""},
	Int:     {"i", "int", ""},
	Uint:    {"u", "uint", ""},
	Bool:    {"b", "bool", ""},
	Int8:    {"i8", "int8_t", "__GLSLD_FEATURE_ENABLE_INT8_TYPE"},
	Int16:   {"i16", "int16_t", "__GLSLD_FEATURE_ENABLE_INT16_TYPE"},
	Int32:   {"i32", "int32_t", "__GLSLD_FEATURE_ENABLE_INT32_TYPE"},
	Int64:   {"i64", "int64_t", "__GLSLD_FEATURE_ENABLE_INT64_TYPE"},
	Uint8:   {"u8", "uint8_t", "__GLSLD_FEATURE_ENABLE_UINT8_TYPE"},
	Uint16:  {"u16", "uint16_t", "__GLSLD_FEATURE_ENABLE_UINT16_TYPE"},
	Uint32:  {"u32", "uint32_t", "__GLSLD_FEATURE_ENABLE_UINT32_TYPE"},
	Uint64:  {"u64", "uint64_t", "__GLSLD_FEATURE_ENABLE_UINT64_TYPE"},
	Float16: {"f16", "float16_t", "__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE"},
	Float32: {"f32", "float32_t", "__GLSLD_FEATURE_ENABLE_FLOAT32_TYPE"},
}

// IsValid returns whether the family is one of the known families.
func (f Family) IsValid() bool {
	return f >= 0 && f < FamilyN
}

// Prefix returns the prefix used for vector and matrix
// type names of this family, such as "i8" in i8vec3.
// It returns "" for an unknown family.
func (f Family) Prefix() string {
	if !f.IsValid() {
		return ""
	}
	return families[f].prefix
}

// Scalar returns the scalar base type of the family,
// such as "int8_t" for [Int8].
func (f Family) Scalar() (string, error) {
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownFamily, f)
	}
	return families[f].scalar, nil
}

// Guards returns the feature guard macros that must be defined
// for types of this family to be available. Plain families
// have no guards.
func (f Family) Guards() []string {
	if !f.IsValid() || families[f].guard == "" {
		return nil
	}
	return []string{families[f].guard}
}

// ParseFamily returns the family with the given vector prefix,
// such as "" for [Float] and "u16" for [Uint16].
func ParseFamily(prefix string) (Family, error) {
	for f, fi := range families {
		if fi.prefix == prefix {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, prefix)
}
