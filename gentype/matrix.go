// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gentype

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/base/errors"
)

// Matrix is a concrete matrix type with independent
// column and row counts (matCxR in GLSL).
type Matrix struct {

	// Family is the scalar family of the matrix.
	Family Family

	// Columns is the number of columns, 2-4.
	Columns int

	// Rows is the number of rows, 2-4.
	Rows int
}

// NewMatrix returns the matrix type with the given family,
// column count, and row count.
func NewMatrix(f Family, cols, rows int) (Matrix, error) {
	if !f.IsValid() {
		return Matrix{}, fmt.Errorf("%w: %d", ErrUnknownFamily, f)
	}
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return Matrix{}, fmt.Errorf("%w: matrix %dx%d", ErrInvalidDimension, cols, rows)
	}
	return Matrix{Family: f, Columns: cols, Rows: rows}, nil
}

// MustMatrix is like [NewMatrix] but panics on an error.
func MustMatrix(f Family, cols, rows int) Matrix {
	return errors.Must1(NewMatrix(f, cols, rows))
}

// IsSquare returns whether the matrix has as many rows as columns,
// which is required for determinant and inverse.
func (m Matrix) IsSquare() bool {
	return m.Columns == m.Rows
}

// Scalar returns the scalar base type of the matrix.
// It logs an error and returns "" for an unknown family.
func (m Matrix) Scalar() string {
	return errors.Log1(m.Family.Scalar())
}

// Guards returns the feature guards required for the matrix type.
func (m Matrix) Guards() []string {
	return m.Family.Guards()
}

// ColumnVector returns the type of one column of the matrix,
// which has one component per row.
func (m Matrix) ColumnVector() Vector {
	return MustVector(m.Family, m.Rows)
}

// RowVector returns the type of one row of the matrix,
// which has one component per column.
func (m Matrix) RowVector() Vector {
	return MustVector(m.Family, m.Columns)
}

// Transposed returns the matrix type with rows and columns swapped.
func (m Matrix) Transposed() Matrix {
	return Matrix{Family: m.Family, Columns: m.Rows, Rows: m.Columns}
}

// String returns the GLSL name of the type: matN for square
// matrices and matCxR otherwise, with the family prefix.
func (m Matrix) String() string {
	s := m.Family.Prefix() + "mat" + strconv.Itoa(m.Columns)
	if m.IsSquare() {
		return s
	}
	return s + "x" + strconv.Itoa(m.Rows)
}
