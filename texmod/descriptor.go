// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texmod

import (
	"iter"

	"cogentcore.org/glslstd/gentype"
)

// Descriptor describes one concrete sampler or image shape,
// such as isampler2DArray or image2DMS.
type Descriptor struct {

	// Prefix is the texel family: [gentype.Float] (no prefix),
	// [gentype.Int] ("i"), or [gentype.Uint] ("u").
	Prefix gentype.Family

	// Postfix is the shape postfix, such as "CubeArrayShadow".
	Postfix string

	// Dim is the coordinate dimension of the base shape,
	// with cube maps counted as 3.
	Dim int

	// Facets are the facets of the shape.
	Facets Facets
}

// NewDescriptor returns the descriptor of the given prefix
// family and postfix, deriving the facets from the postfix.
func NewDescriptor(prefix gentype.Family, postfix string) Descriptor {
	fs, dim := FacetsOf(postfix)
	return Descriptor{Prefix: prefix, Postfix: postfix, Dim: dim, Facets: fs}
}

// Has returns whether the shape has the given facet.
func (d Descriptor) Has(f Facet) bool {
	return d.Facets.Has(f)
}

// Sampler returns the sampler type name, such as usampler2DMSArray.
func (d Descriptor) Sampler() string {
	return d.Prefix.Prefix() + "sampler" + d.Postfix
}

// Image returns the image type name, such as iimageCube.
func (d Descriptor) Image() string {
	return d.Prefix.Prefix() + "image" + d.Postfix
}

// Texel returns the four component vector type a lookup returns
// for this shape when it is not a shadow shape.
func (d Descriptor) Texel() gentype.Vector {
	return gentype.MustVector(d.Prefix, 4)
}

// SizeDim returns the number of components returned by a size query:
// one face for cube maps, plus the layer count for arrays.
func (d Descriptor) SizeDim() int {
	n := d.Dim
	if d.Has(FacetCube) {
		n = 2
	}
	if d.Has(FacetArray) {
		n++
	}
	return n
}

// LookupDim returns the number of components of the coordinate
// of a texel lookup: the coordinate dimension, plus one for the
// array layer, plus one for the depth reference. Non-arrayed
// shadow lookups use at least 3 components, and the count is
// capped at 4.
func (d Descriptor) LookupDim() int {
	n := d.Dim
	if d.Has(FacetArray) {
		n++
	}
	if d.Has(FacetShadow) {
		n++
		if !d.Has(FacetArray) {
			n = max(n, 3)
		}
	}
	return min(n, 4)
}

// FetchDim returns the number of components of the integer
// coordinate of a texel fetch.
func (d Descriptor) FetchDim() int {
	n := d.Dim
	if d.Has(FacetArray) {
		n++
	}
	return n
}

// GatherDim returns the number of components of the coordinate
// of a texture gather, which does not include the depth reference.
func (d Descriptor) GatherDim() int {
	return d.FetchDim()
}

// ImageDim returns the number of components of an image coordinate.
// Cube images address faces with a third component, which also
// holds the layer for cube arrays.
func (d Descriptor) ImageDim() int {
	if d.Has(FacetCube) {
		return 3
	}
	return d.FetchDim()
}

// String returns the sampler type name.
func (d Descriptor) String() string {
	return d.Sampler()
}

// Prefixes are the texel families of sampler and image shapes.
var Prefixes = []gentype.Family{gentype.Float, gentype.Int, gentype.Uint}

// All returns every sampler and image shape, for each prefix:
// 1D, 2D and Cube with their Array forms and, for float shapes,
// their Shadow and ArrayShadow forms; then 3D, 2DRect,
// 2DRectShadow (float only), Buffer, 2DMS, and 2DMSArray.
// Each call returns the same sequence.
func All() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for _, p := range Prefixes {
			for d := range Prefix(p) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Prefix returns the shapes of [All] with the given prefix family.
func Prefix(p gentype.Family) iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		isFloat := p == gentype.Float
		var postfixes []string
		for _, base := range []string{"1D", "2D", "Cube"} {
			postfixes = append(postfixes, base, base+"Array")
			if isFloat {
				postfixes = append(postfixes, base+"Shadow", base+"ArrayShadow")
			}
		}
		postfixes = append(postfixes, "3D", "2DRect")
		if isFloat {
			postfixes = append(postfixes, "2DRectShadow")
		}
		postfixes = append(postfixes, "Buffer", "2DMS", "2DMSArray")
		for _, pf := range postfixes {
			if !yield(NewDescriptor(p, pf)) {
				return
			}
		}
	}
}
