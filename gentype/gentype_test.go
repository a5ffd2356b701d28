// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gentype

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	want := map[Family]string{
		Float: "float", Double: "double", Int: "int", Uint: "uint", Bool: "bool",
		Int8: "int8_t", Int16: "int16_t", Int32: "int32_t", Int64: "int64_t",
		Uint8: "uint8_t", Uint16: "uint16_t", Uint32: "uint32_t", Uint64: "uint64_t",
		Float16: "float16_t", Float32: "float32_t",
	}
	for _, f := range FamilyValues() {
		s, err := f.Scalar()
		require.NoError(t, err)
		assert.Equal(t, want[f], s, f.String())
	}

	_, err := Family(100).Scalar()
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestParseFamily(t *testing.T) {
	for _, f := range FamilyValues() {
		got, err := ParseFamily(f.Prefix())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFamily("q")
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestGuards(t *testing.T) {
	for _, f := range []Family{Float, Double, Int, Uint, Bool} {
		assert.Empty(t, f.Guards(), f.String())
	}
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE"}, Float16.Guards())
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_UINT64_TYPE"}, Uint64.Guards())
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_INT8_TYPE"}, MustVector(Int8, 3).Guards())
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		f    Family
		dim  int
		want string
	}{
		{Float, 2, "vec2"},
		{Double, 3, "dvec3"},
		{Int, 4, "ivec4"},
		{Uint, 2, "uvec2"},
		{Bool, 3, "bvec3"},
		{Int16, 2, "i16vec2"},
		{Uint8, 4, "u8vec4"},
		{Float16, 3, "f16vec3"},
	}
	for _, tt := range tests {
		v, err := NewVector(tt.f, tt.dim)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String())
		assert.Equal(t, tt.want, MustVector(tt.f, tt.dim).String())
	}
}

func TestDimensionOne(t *testing.T) {
	for _, f := range FamilyValues() {
		s, err := f.Scalar()
		require.NoError(t, err)
		assert.Equal(t, s, MustVector(f, 1).String())
	}
}

func TestInvalidDimension(t *testing.T) {
	for _, dim := range []int{-1, 0, 5} {
		_, err := NewVector(Float, dim)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
	for _, d := range [][2]int{{1, 2}, {2, 5}, {0, 0}} {
		_, err := NewMatrix(Float, d[0], d[1])
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
	_, err := NewVector(FamilyN, 2)
	assert.ErrorIs(t, err, ErrUnknownFamily)
	assert.Panics(t, func() { MustVector(Float, 7) })
}

func TestDerived(t *testing.T) {
	v := MustVector(Float16, 3)
	assert.Equal(t, "bvec3", v.AsBool().String())
	assert.Equal(t, "ivec3", v.AsInt().String())
	assert.Equal(t, "uvec3", v.AsUint().String())
	assert.Equal(t, v.Guards(), v.AsBool().Guards())
	assert.Equal(t, v.Guards(), v.AsInt().Guards())

	s := MustVector(Double, 1)
	assert.Equal(t, "bool", s.AsBool().String())
	assert.Equal(t, "int", s.AsInt().String())
	assert.Empty(t, s.AsUint().Guards())

	r, err := MustVector(Float16, 3).Resize(2)
	require.NoError(t, err)
	assert.Equal(t, "f16vec2", r.String())
	assert.Equal(t, v.Guards(), r.Guards())
	r, err = MustVector(Float, 3).Resize(1)
	require.NoError(t, err)
	assert.Equal(t, "float", r.String())
	for _, dim := range []int{0, 5, 7, -1} {
		_, err := MustVector(Float, 3).Resize(dim)
		assert.ErrorIs(t, err, ErrInvalidDimension, dim)
	}
}

func TestUnknownFamilyLiteral(t *testing.T) {
	v := Vector{Family: Family(100), Dim: 1}
	assert.NotPanics(t, func() { assert.Equal(t, "", v.Scalar()) })
	assert.NotPanics(t, func() { assert.Equal(t, "", v.String()) })
	m := Matrix{Family: Family(100), Columns: 2, Rows: 2}
	assert.NotPanics(t, func() { assert.Equal(t, "", m.Scalar()) })
	assert.Nil(t, m.Guards())
}

func TestMatrix(t *testing.T) {
	m, err := NewMatrix(Float, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "mat2x3", m.String())
	assert.False(t, m.IsSquare())
	assert.Equal(t, "vec3", m.ColumnVector().String())
	assert.Equal(t, "vec2", m.RowVector().String())
	assert.Equal(t, "mat3x2", m.Transposed().String())
	assert.Equal(t, m, m.Transposed().Transposed())

	d, err := NewMatrix(Double, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "dmat4", d.String())
	assert.True(t, d.IsSquare())
	assert.Equal(t, "double", d.Scalar())

	h, err := NewMatrix(Float16, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, "f16mat3", h.String())
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE"}, h.Guards())
}

func TestVectors(t *testing.T) {
	var names []string
	for v := range Vectors(Float) {
		names = append(names, v.String())
	}
	assert.Equal(t, []string{"float", "vec2", "vec3", "vec4"}, names)

	all := slices.Collect(Vectors(Join(FloatFamilies, DoubleFamilies)...))
	assert.Len(t, all, 12)
	assert.Equal(t, "float16_t", all[1].String())
	assert.Equal(t, "dvec4", all[11].String())

	// determinism
	assert.Equal(t, all, slices.Collect(Vectors(Join(FloatFamilies, DoubleFamilies)...)))

	assert.Len(t, slices.Collect(Scalars(IntFamilies...)), 4)
	assert.Len(t, slices.Collect(Matrices(FloatFamilies...)), 18)

	n := 0
	for range Vectors(Float) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestFamilyEnum(t *testing.T) {
	var f Family
	require.NoError(t, f.SetString("Int16"))
	assert.Equal(t, Int16, f)
	assert.Error(t, f.SetString("Quad"))
	assert.Len(t, f.Values(), int(FamilyN))
}
