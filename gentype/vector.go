// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gentype

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/core/base/errors"
)

// Vector is a concrete member of a generic vector type:
// a family and a dimension. A dimension of 1 stands
// for the bare scalar type.
type Vector struct {

	// Family is the scalar family of the vector.
	Family Family

	// Dim is the number of components, 1-4.
	Dim int

	// guards are the feature guards of the vector, which
	// are those of the family it was originally made from.
	guards []string
}

// NewVector returns the vector type of the given family and dimension.
func NewVector(f Family, dim int) (Vector, error) {
	if !f.IsValid() {
		return Vector{}, fmt.Errorf("%w: %d", ErrUnknownFamily, f)
	}
	if dim < 1 || dim > 4 {
		return Vector{}, fmt.Errorf("%w: vector dimension %d", ErrInvalidDimension, dim)
	}
	return Vector{Family: f, Dim: dim, guards: f.Guards()}, nil
}

// MustVector is like [NewVector] but panics on an error.
// It is meant for literal type tables.
func MustVector(f Family, dim int) Vector {
	return errors.Must1(NewVector(f, dim))
}

// Scalar returns the scalar base type of the vector.
// It logs an error and returns "" for an unknown family.
func (v Vector) Scalar() string {
	return errors.Log1(v.Family.Scalar())
}

// Guards returns the feature guards required for the vector type.
func (v Vector) Guards() []string {
	return slices.Clone(v.guards)
}

// String returns the GLSL name of the type, such as vec3,
// i16vec2, or float for a dimension of 1.
func (v Vector) String() string {
	if v.Dim == 1 {
		return v.Scalar()
	}
	return v.Family.Prefix() + "vec" + strconv.Itoa(v.Dim)
}

// derive returns the vector of family f with the same
// dimension and the guards of v.
func (v Vector) derive(f Family) Vector {
	return Vector{Family: f, Dim: v.Dim, guards: v.guards}
}

// AsBool returns the boolean vector with the same dimension,
// as used by comparisons and component selection.
func (v Vector) AsBool() Vector { return v.derive(Bool) }

// AsInt returns the signed integer vector with the same dimension.
func (v Vector) AsInt() Vector { return v.derive(Int) }

// AsUint returns the unsigned integer vector with the same dimension.
func (v Vector) AsUint() Vector { return v.derive(Uint) }

// AsFloat returns the float vector with the same dimension.
func (v Vector) AsFloat() Vector { return v.derive(Float) }

// Resize returns the vector of the same family and guards
// with the given dimension.
func (v Vector) Resize(dim int) (Vector, error) {
	if _, err := NewVector(v.Family, dim); err != nil {
		return Vector{}, err
	}
	v.Dim = dim
	return v, nil
}
