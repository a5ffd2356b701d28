// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texmod enumerates the sampler and image shapes
// (1D, 2DArray, CubeShadow, 2DMS, ...) of GLSL and provides
// the facet whitelists used to decide which texture and image
// functions exist for each shape.
package texmod

//go:generate core generate

import (
	"strings"
)

// Facet is one independent trait of a sampler or image shape.
type Facet int32 //enums:enum -trim-prefix Facet

const (
	// Facet1D is a one dimensional shape.
	Facet1D Facet = iota

	// Facet2D is a two dimensional shape.
	Facet2D

	// Facet3D is a three dimensional shape.
	Facet3D

	// FacetCube is a cube map.
	FacetCube

	// FacetArray is an arrayed shape.
	FacetArray

	// FacetShadow is a depth comparison shape.
	FacetShadow

	// FacetRect is a rectangle texture.
	FacetRect

	// FacetBuffer is a buffer texture.
	FacetBuffer

	// FacetMS is a multisample shape.
	FacetMS
)

// Facets is a set of [Facet] values.
type Facets uint16

// Allow returns the set containing the given facets.
func Allow(fs ...Facet) Facets {
	var s Facets
	for _, f := range fs {
		s = s.With(f)
	}
	return s
}

// Has returns whether the set contains f.
func (s Facets) Has(f Facet) bool {
	return s&(1<<f) != 0
}

// With returns the set with f added.
func (s Facets) With(f Facet) Facets {
	return s | 1<<f
}

// Satisfies returns whether every facet in s is also in allowed,
// which acts as a whitelist. Facets s does not have are always
// permitted.
func (s Facets) Satisfies(allowed Facets) bool {
	return s&^allowed == 0
}

// String returns the facets joined by "|", such as "2D|Array|Shadow".
func (s Facets) String() string {
	var parts []string
	for _, f := range FacetValues() {
		if s.Has(f) {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "|")
}

// Gate is a union of facet whitelists: a shape passes
// the gate if it satisfies any one of them.
type Gate []Facets

// AnyOf returns a gate admitting shapes that satisfy any of the given sets.
func AnyOf(sets ...Facets) Gate {
	return Gate(sets)
}

// Only returns a gate with the single whitelist of the given facets.
func Only(fs ...Facet) Gate {
	return Gate{Allow(fs...)}
}

// Admits returns whether the facets pass the gate.
func (g Gate) Admits(s Facets) bool {
	for _, allowed := range g {
		if s.Satisfies(allowed) {
			return true
		}
	}
	return false
}

// postfixFacets maps postfix keywords to facets. Dimension keywords
// also fix the coordinate dimension.
var postfixFacets = []struct {
	keyword string
	facet   Facet
	dim     int
}{
	{"1D", Facet1D, 1},
	{"2D", Facet2D, 2},
	{"3D", Facet3D, 3},
	{"Cube", FacetCube, 3},
	{"Array", FacetArray, 0},
	{"Shadow", FacetShadow, 0},
	{"Rect", FacetRect, 0},
	{"Buffer", FacetBuffer, 0},
	{"MS", FacetMS, 0},
}

// FacetsOf returns the facets and coordinate dimension of a
// sampler or image postfix such as "2DArrayShadow". A postfix
// without a dimension keyword (Buffer) has dimension 1.
func FacetsOf(postfix string) (Facets, int) {
	var s Facets
	dim := 1
	for _, pf := range postfixFacets {
		if !strings.Contains(postfix, pf.keyword) {
			continue
		}
		s = s.With(pf.facet)
		if pf.dim > 0 {
			dim = pf.dim
		}
	}
	return s, dim
}
