// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"slices"
	"strings"

	"cogentcore.org/glslstd/expand"
	"cogentcore.org/glslstd/gentype"
	"cogentcore.org/glslstd/texmod"
)

// shapeFunc is a texture or image function declared for each
// shape that its gate admits.
type shapeFunc struct {

	// doc is the documentation name.
	doc string

	// sig is the signature template, in terms of the placeholders
	// of [shapeExpander].
	sig string

	// gate admits the shapes that have the function. A nil gate
	// admits every shape.
	gate texmod.Gate

	// require are facets a shape must have, in addition to
	// satisfying the gate.
	require texmod.Facets

	// bias admits the shapes that also take an optional bias.
	bias texmod.Gate

	// prefixes restricts the function to shapes of these prefix
	// families when non-empty.
	prefixes []gentype.Family
}

// admits returns whether the function is declared for the shape.
func (f *shapeFunc) admits(d texmod.Descriptor) bool {
	if f.gate != nil && !f.gate.Admits(d.Facets) {
		return false
	}
	if d.Facets&f.require != f.require {
		return false
	}
	return len(f.prefixes) == 0 || slices.Contains(f.prefixes, d.Prefix)
}

// template returns the signature template for the shape.
func (f *shapeFunc) template(d texmod.Descriptor) string {
	if f.bias != nil && f.bias.Admits(d.Facets) {
		return strings.Replace(f.sig, ");", "[, float bias]);", 1)
	}
	return f.sig
}

// Gates of the texture functions.
var (
	// lookupGate admits all shapes but buffers and multisample shapes.
	lookupGate = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray, texmod.FacetShadow, texmod.FacetRect)

	// biasGate admits the shapes of texture that take a bias.
	biasGate = texmod.AnyOf(
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray),
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.FacetCube, texmod.FacetShadow),
		texmod.Allow(texmod.Facet1D, texmod.FacetArray, texmod.FacetShadow),
	)

	lodGate = texmod.AnyOf(
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray),
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.FacetShadow),
		texmod.Allow(texmod.Facet1D, texmod.FacetArray, texmod.FacetShadow),
	)

	// lodOffsetGate is lodGate without cube maps, and also admits
	// the shapes of textureOffset that take a bias.
	lodOffsetGate = texmod.AnyOf(
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetArray),
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.FacetShadow),
		texmod.Allow(texmod.Facet1D, texmod.FacetArray, texmod.FacetShadow),
	)

	offsetGate  = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetArray, texmod.FacetShadow, texmod.FacetRect)
	projGate    = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetShadow, texmod.FacetRect)
	projBias    = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetShadow)
	projLodGate = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetShadow)
	fetchGate   = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetArray, texmod.FacetRect, texmod.FacetBuffer, texmod.FacetMS)

	gradGate = texmod.AnyOf(
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray, texmod.FacetRect),
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.FacetCube, texmod.FacetShadow, texmod.FacetRect),
		texmod.Allow(texmod.Facet1D, texmod.Facet2D, texmod.FacetArray, texmod.FacetShadow),
	)

	gatherGate       = texmod.Only(texmod.Facet2D, texmod.FacetCube, texmod.FacetArray, texmod.FacetShadow, texmod.FacetRect)
	gatherColorGate  = texmod.Only(texmod.Facet2D, texmod.FacetCube, texmod.FacetArray, texmod.FacetRect)
	gatherOffsetGate = texmod.Only(texmod.Facet2D, texmod.FacetArray, texmod.FacetShadow, texmod.FacetRect)
	gatherOffColor   = texmod.Only(texmod.Facet2D, texmod.FacetArray, texmod.FacetRect)

	// queryGate admits the shapes with mipmaps.
	queryGate = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray, texmod.FacetShadow)

	msGate = texmod.Only(texmod.Facet2D, texmod.FacetArray, texmod.FacetMS)

	// imageGate admits every shape without a depth reference.
	imageGate = texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetCube, texmod.FacetArray, texmod.FacetRect, texmod.FacetBuffer, texmod.FacetMS)
)

var textureFuncs = []shapeFunc{
	{doc: "textureSize", sig: "genSize textureSize(gsampler sampler_, genSizeLod);"},
	{doc: "textureQueryLod", sig: "vec2 textureQueryLod(gsampler sampler_, genDeriv P);", gate: queryGate},
	{doc: "textureQueryLevels", sig: "int textureQueryLevels(gsampler sampler_);", gate: queryGate},
	{doc: "textureSamples", sig: "int textureSamples(gsampler sampler_);", gate: msGate, require: texmod.Allow(texmod.FacetMS)},

	{doc: "texture", sig: "genTexel texture(gsampler sampler_, genCoord P, genCompare);", gate: lookupGate, bias: biasGate},
	{doc: "textureProj", sig: "genTexel textureProj(gsampler sampler_, genProjCoord P);", gate: projGate, bias: projBias},
	{doc: "textureLod", sig: "genTexel textureLod(gsampler sampler_, genCoord P, float lod);", gate: lodGate},
	{doc: "textureOffset", sig: "genTexel textureOffset(gsampler sampler_, genCoord P, genOffset offset);", gate: offsetGate, bias: lodOffsetGate},
	{doc: "texelFetch", sig: "genTexel texelFetch(gsampler sampler_, genFetch P, genFetchLevel);", gate: fetchGate},
	{doc: "texelFetchOffset", sig: "genTexel texelFetchOffset(gsampler sampler_, genFetch P, genSizeLod, genOffset offset);",
		gate: texmod.Only(texmod.Facet1D, texmod.Facet2D, texmod.Facet3D, texmod.FacetArray, texmod.FacetRect)},
	{doc: "textureProjOffset", sig: "genTexel textureProjOffset(gsampler sampler_, genProjCoord P, genOffset offset);", gate: projGate, bias: projBias},
	{doc: "textureLodOffset", sig: "genTexel textureLodOffset(gsampler sampler_, genCoord P, float lod, genOffset offset);", gate: lodOffsetGate},
	{doc: "textureProjLod", sig: "genTexel textureProjLod(gsampler sampler_, genProjCoord P, float lod);", gate: projLodGate},
	{doc: "textureProjLodOffset", sig: "genTexel textureProjLodOffset(gsampler sampler_, genProjCoord P, float lod, genOffset offset);", gate: projLodGate},
	{doc: "textureGrad", sig: "genTexel textureGrad(gsampler sampler_, genCoord P, genDeriv dPdx, genDeriv dPdy);", gate: gradGate},
	{doc: "textureGradOffset", sig: "genTexel textureGradOffset(gsampler sampler_, genCoord P, genDeriv dPdx, genDeriv dPdy, genOffset offset);", gate: offsetGate},
	{doc: "textureProjGrad", sig: "genTexel textureProjGrad(gsampler sampler_, genProjCoord P, genDeriv dPdx, genDeriv dPdy);", gate: projGate},
	{doc: "textureProjGradOffset", sig: "genTexel textureProjGradOffset(gsampler sampler_, genProjCoord P, genDeriv dPdx, genDeriv dPdy, genOffset offset);", gate: projGate},

	{doc: "textureGather", sig: "gvec4 textureGather(gsampler sampler_, genGather P[, int comp]);", gate: gatherColorGate},
	{doc: "textureGather", sig: "vec4 textureGather(gsampler sampler_, genGather P, float refZ);", gate: gatherGate, require: texmod.Allow(texmod.FacetShadow)},
	{doc: "textureGatherOffset", sig: "gvec4 textureGatherOffset(gsampler sampler_, genGather P, ivec2 offset[, int comp]);", gate: gatherOffColor},
	{doc: "textureGatherOffset", sig: "vec4 textureGatherOffset(gsampler sampler_, genGather P, float refZ, ivec2 offset);", gate: gatherOffsetGate, require: texmod.Allow(texmod.FacetShadow)},
	{doc: "textureGatherOffsets", sig: "gvec4 textureGatherOffsets(gsampler sampler_, genGather P, ivec2 offsets[4][, int comp]);", gate: gatherOffColor},
	{doc: "textureGatherOffsets", sig: "vec4 textureGatherOffsets(gsampler sampler_, genGather P, float refZ, ivec2 offsets[4]);", gate: gatherOffsetGate, require: texmod.Allow(texmod.FacetShadow)},
}

var integerPrefixes = []gentype.Family{gentype.Int, gentype.Uint}

var imageFuncs = []shapeFunc{
	{doc: "imageSize", sig: "genSize imageSize(readonly writeonly gimage image_);", gate: imageGate},
	{doc: "imageSamples", sig: "int imageSamples(readonly writeonly gimage image_);", gate: imageGate, require: texmod.Allow(texmod.FacetMS)},
	{doc: "imageLoad", sig: "gvec4 imageLoad(readonly gimage image_, genImageCoord P, genSample);", gate: imageGate},
	{doc: "imageStore", sig: "void imageStore(writeonly gimage image_, genImageCoord P, genSample, gvec4 data);", gate: imageGate},
	{doc: "imageAtomicAdd", sig: "genScalar imageAtomicAdd(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicMin", sig: "genScalar imageAtomicMin(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicMax", sig: "genScalar imageAtomicMax(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicAnd", sig: "genScalar imageAtomicAnd(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicOr", sig: "genScalar imageAtomicOr(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicXor", sig: "genScalar imageAtomicXor(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
	{doc: "imageAtomicExchange", sig: "genScalar imageAtomicExchange(gimage image_, genImageCoord P, genSample, genScalar data);", gate: imageGate},
	{doc: "imageAtomicCompSwap", sig: "genScalar imageAtomicCompSwap(gimage image_, genImageCoord P, genSample, genScalar compare, genScalar data);", gate: imageGate, prefixes: integerPrefixes},
}

// shapeExpander returns the expander of the placeholders that the
// texture and image signature templates use for the shape.
func shapeExpander(d texmod.Descriptor) *expand.Expander {
	vec := func(n int) string { return gentype.MustVector(gentype.Float, n).String() }
	ivec := func(n int) string { return gentype.MustVector(gentype.Int, n).String() }

	texel := d.Texel().String()
	lookup := texel
	if d.Has(texmod.FacetShadow) {
		lookup = "float"
	}

	var proj []expand.Substitution
	switch {
	case d.Has(texmod.FacetShadow):
		proj = subs("vec4")
	case d.Dim+1 < 4:
		proj = subs(vec(d.Dim+1), "vec4")
	default:
		proj = subs("vec4")
	}

	sizeLod, fetchLevel, sample := "int lod", "int lod", ""
	switch {
	case d.Has(texmod.FacetMS):
		sizeLod, fetchLevel, sample = "", "int sample", "int sample"
	case d.Has(texmod.FacetRect), d.Has(texmod.FacetBuffer):
		sizeLod, fetchLevel = "", ""
	}

	compare := ""
	if d.Has(texmod.FacetCube) && d.Has(texmod.FacetArray) && d.Has(texmod.FacetShadow) {
		compare = "float compare"
	}

	scalar, _ := d.Prefix.Scalar()

	return expand.New().
		Add("gsampler", expand.Sub(d.Sampler())).
		Add("gimage", expand.Sub(d.Image())).
		Add("gvec4", expand.Sub(texel)).
		Add("genTexel", expand.Sub(lookup)).
		Add("genScalar", expand.Sub(scalar)).
		Add("genSize", expand.Sub(ivec(d.SizeDim()))).
		Add("genSizeLod", expand.Sub(sizeLod)).
		Add("genCoord", expand.Sub(vec(d.LookupDim()))).
		Add("genCompare", expand.Sub(compare)).
		Add("genProjCoord", proj...).
		Add("genFetch", expand.Sub(ivec(d.FetchDim()))).
		Add("genFetchLevel", expand.Sub(fetchLevel)).
		Add("genOffset", expand.Sub(ivec(d.Dim))).
		Add("genDeriv", expand.Sub(vec(d.Dim))).
		Add("genGather", expand.Sub(vec(d.GatherDim()))).
		Add("genImageCoord", expand.Sub(ivec(d.ImageDim()))).
		Add("genSample", expand.Sub(sample))
}

// addShapeFuncs adds the functions for every shape they admit,
// shape by shape.
func addShapeFuncs(a *assembler, funcs []shapeFunc) {
	for d := range texmod.All() {
		var e *expand.Expander
		for i := range funcs {
			f := &funcs[i]
			if !f.admits(d) {
				continue
			}
			if e == nil {
				e = shapeExpander(d)
			}
			a.add(f.doc, f.template(d), e)
		}
	}
}

func addTexture(a *assembler) {
	addShapeFuncs(a, textureFuncs)
}

func addImage(a *assembler) {
	addShapeFuncs(a, imageFuncs)
}
