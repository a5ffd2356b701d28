// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gentype

import (
	"iter"
	"slices"
)

// The family sets that the generic type names stand for.
var (
	// FloatFamilies are the families of genFType.
	FloatFamilies = []Family{Float, Float16}

	// DoubleFamilies are the families of genDType.
	DoubleFamilies = []Family{Double}

	// IntFamilies are the families of genIType.
	IntFamilies = []Family{Int, Int8, Int16, Int64}

	// UintFamilies are the families of genUType.
	UintFamilies = []Family{Uint, Uint8, Uint16, Uint64}

	// BoolFamilies are the families of genBType.
	BoolFamilies = []Family{Bool}
)

// Join returns the concatenation of the given family sets.
func Join(sets ...[]Family) []Family {
	return slices.Concat(sets...)
}

// Scalars returns the scalar (dimension 1) types of the given families.
func Scalars(fams ...Family) iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for _, f := range fams {
			if !yield(MustVector(f, 1)) {
				return
			}
		}
	}
}

// Vectors returns the types of dimension 1 to 4 of the given
// families, ordered by dimension first and then by family.
func Vectors(fams ...Family) iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		for dim := 1; dim <= 4; dim++ {
			for _, f := range fams {
				if !yield(MustVector(f, dim)) {
					return
				}
			}
		}
	}
}

// Matrices returns every matrix type of the given families,
// ordered by columns, then rows, then family.
func Matrices(fams ...Family) iter.Seq[Matrix] {
	return func(yield func(Matrix) bool) {
		for cols := 2; cols <= 4; cols++ {
			for rows := 2; rows <= 4; rows++ {
				for _, f := range fams {
					if !yield(MustMatrix(f, cols, rows)) {
						return
					}
				}
			}
		}
	}
}
