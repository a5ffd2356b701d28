// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"cogentcore.org/glslstd/expand"
	"cogentcore.org/glslstd/stdlib"
	"cogentcore.org/glslstd/texmod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T) (*stdlib.Builder, *Report) {
	t.Helper()
	b := stdlib.NewBuilder()
	rep, err := Assemble(b, Options{})
	require.NoError(t, err)
	return b, rep
}

// count returns the number of declarations of the named function.
func count(b *stdlib.Builder, name string) int {
	n := 0
	for _, f := range b.Functions() {
		if strings.Contains(f.Signature, " "+name+"(") {
			n++
		}
	}
	return n
}

func TestReport(t *testing.T) {
	b, rep := assemble(t)
	assert.Equal(t, b.Len(), rep.Functions)
	assert.Equal(t, len(VariableSnippets)+len(ExtensionSnippets), rep.Snippets)
	require.Len(t, rep.Categories, len(functionCategories))

	sum := 0
	for _, c := range rep.Categories {
		sum += c.Functions
		if c.Name == "noise" {
			assert.Zero(t, c.Functions)
		} else {
			assert.NotZero(t, c.Functions, c.Name)
		}
	}
	assert.Equal(t, rep.Functions, sum)
	assert.Contains(t, rep.Guards, "__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE")
	assert.Contains(t, rep.Guards, "__GLSLD_SHADER_STAGE_VERTEX")
}

func TestIdempotent(t *testing.T) {
	b1, _ := assemble(t)
	b2, _ := assemble(t)
	assert.Equal(t, b1.Build(), b2.Build())
}

func TestSnippetOrder(t *testing.T) {
	b, _ := assemble(t)
	out := b.Build()
	constants, err := Snippet("constants")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, constants))

	last := -1
	for _, name := range slices.Concat(VariableSnippets, ExtensionSnippets) {
		s, err := Snippet(name)
		require.NoError(t, err)
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, name)
		assert.Greater(t, i, last, name)
		last = i
	}
	assert.Less(t, last, strings.Index(out, "float radians(float degrees);"))
}

func TestCounts(t *testing.T) {
	b, _ := assemble(t)
	counts := map[string]int{
		"abs":                 28,
		"matrixCompMult":      27,
		"determinant":         9,
		"any":                 3,
		"textureSize":         40,
		"textureSamples":      6,
		"imageSamples":        6,
		"imageSize":           33,
		"imageAtomicAdd":      22,
		"imageAtomicExchange": 33,
		"subpassLoad":         6,
		"atomicAdd":           2,
		"barrier":             1,
		"allInvocationsEqual": 1,
	}
	for name, n := range counts {
		assert.Equal(t, n, count(b, name), name)
	}
}

func TestSignatures(t *testing.T) {
	b, _ := assemble(t)
	out := b.Build()
	for _, sig := range []string{
		"vec4 texture(sampler2D sampler_, vec2 P);",
		"vec4 texture(sampler2D sampler_, vec2 P, float bias);",
		"float texture(samplerCubeArrayShadow sampler_, vec4 P, float compare);",
		"float texture(sampler2DArrayShadow sampler_, vec4 P);",
		"vec4 textureProj(sampler2D sampler_, vec3 P);",
		"vec4 textureProj(sampler2D sampler_, vec4 P);",
		"float textureProj(sampler2DShadow sampler_, vec4 P, float bias);",
		"ivec2 textureSize(sampler2DMS sampler_);",
		"int textureSize(samplerBuffer sampler_);",
		"ivec3 textureSize(sampler2DArray sampler_, int lod);",
		"vec2 textureQueryLod(sampler2D sampler_, vec2 P);",
		"vec4 texelFetch(sampler2DMS sampler_, ivec2 P, int sample);",
		"vec4 texelFetch(samplerBuffer sampler_, int P);",
		"ivec4 texelFetch(isampler2DArray sampler_, ivec3 P, int lod);",
		"vec4 textureGatherOffsets(sampler2D sampler_, vec2 P, ivec2 offsets[4], int comp);",
		"vec4 textureGather(samplerCubeShadow sampler_, vec3 P, float refZ);",
		"int imageAtomicAdd(iimage2D image_, ivec2 P, int data);",
		"uint imageAtomicCompSwap(uimage2DMS image_, ivec2 P, int sample, uint compare, uint data);",
		"float imageAtomicExchange(image2D image_, ivec2 P, float data);",
		"vec4 imageLoad(readonly imageCube image_, ivec3 P);",
		"void imageStore(writeonly uimage2DMSArray image_, ivec3 P, int sample, uvec4 data);",
		"mat2x3 outerProduct(vec3 c, vec2 r);",
		"mat3x2 transpose(mat2x3 m);",
		"double determinant(dmat3 m);",
		"float length(vec3 x);",
		"bvec3 mix(bvec3 x, bvec3 y, bvec3 a);",
		"vec4 mix(vec4 x, vec4 y, float a);",
		"bvec2 lessThan(uvec2 x, uvec2 y);",
		"vec4 subpassLoad(subpassInputMS subpass, int sample);",
		"uvec4 subpassLoad(usubpassInput subpass);",
		"uint atomicCompSwap(inout uint mem, uint compare, uint data);",
		"bool allInvocationsEqual(bool value);",
	} {
		assert.Contains(t, out, sig+"\n")
	}
	for _, absent := range []string{
		"float texture(sampler2DArrayShadow sampler_, vec4 P, float bias);",
		"textureQueryLod(sampler2DMS",
		"textureQueryLod(samplerBuffer",
		"textureQueryLod(sampler2DRect",
		"imageAtomicAdd(image",
		"imageLoad(readonly image2DShadow",
		"texture(sampler2DMS",
		"textureLod(sampler2DRect",
	} {
		assert.NotContains(t, out, absent)
	}
}

func TestQueryLodShapes(t *testing.T) {
	b, _ := assemble(t)
	out := b.Build()
	n := 0
	for d := range texmod.All() {
		sig := "textureQueryLod(" + d.Sampler() + " "
		if d.Has(texmod.FacetMS) || d.Has(texmod.FacetBuffer) || d.Has(texmod.FacetRect) {
			assert.NotContains(t, out, sig, d.String())
			n++
		} else {
			assert.Contains(t, out, sig, d.String())
		}
	}
	// Buffer, 2DMS and 2DMSArray for each of the three prefixes,
	// plus 2DRect for each prefix and 2DRectShadow
	assert.Equal(t, 13, n)
}

func TestGuards(t *testing.T) {
	b, _ := assemble(t)
	guards := map[string][]string{}
	for _, f := range b.Functions() {
		guards[f.Signature] = f.Guards
	}
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE"}, guards["f16vec2 abs(f16vec2 x);"])
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_INT8_TYPE"}, guards["ivec2 findMSB(highp i8vec2 value);"])
	assert.Equal(t, []string{"__GLSLD_FEATURE_ENABLE_FLOAT16_TYPE"}, guards["f16mat2x3 outerProduct(f16vec3 c, f16vec2 r);"])
	assert.Empty(t, guards["vec2 abs(vec2 x);"])

	assert.Contains(t, b.Build(), "#if __GLSLD_FEATURE_ENABLE_FLOAT16_TYPE\n// ")

	// one #endif per guarded declaration
	fb := stdlib.NewBuilder()
	guarded := 0
	for _, f := range b.Functions() {
		fb.AddFunction(f.Signature, f.Doc, f.Guards...)
		if len(f.Guards) > 0 {
			guarded++
		}
	}
	assert.Equal(t, guarded, strings.Count(fb.Build(), "#endif\n"))
}

var identifier = regexp.MustCompile(`\w+`)

func TestResolved(t *testing.T) {
	b, _ := assemble(t)
	for _, f := range b.Functions() {
		assert.True(t, strings.HasSuffix(f.Signature, ";"), f.Signature)
		for _, tok := range identifier.FindAllString(f.Signature, -1) {
			assert.False(t, expand.IsPlaceholder(tok), f.Signature)
		}
		assert.NotEmpty(t, f.Doc, f.Signature)
	}
}

func TestLenient(t *testing.T) {
	b, _ := assemble(t)
	lb := stdlib.NewBuilder()
	_, err := Assemble(lb, Options{Lenient: true})
	require.NoError(t, err)
	assert.Equal(t, b.Build(), lb.Build())
}

func TestDocs(t *testing.T) {
	docs, err := LoadDocs()
	require.NoError(t, err)
	doc, err := docs.Get("trigonometry", "radians")
	require.NoError(t, err)
	assert.Equal(t, "Converts degrees to radians, i.e. π / 180 * degrees.", doc)

	_, err = docs.Get("trigonometry", "noise1")
	assert.ErrorIs(t, err, ErrMissingDoc)
	_, err = docs.Get("noise", "noise1")
	assert.ErrorIs(t, err, ErrMissingDoc)

	_, err = docs.Get("trigonometry", "radian")
	assert.ErrorIs(t, err, ErrMissingDoc)
	assert.ErrorContains(t, err, "did you mean radians?")
}

func TestSnippet(t *testing.T) {
	s, err := Snippet("ext_ray_query")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "#if __GLSLD_FEATURE_ENABLE_RAY_QUERY\n"))
	assert.Contains(t, s, "rayQueryEXT rayQuery, bool committed")

	_, err = Snippet("mesh")
	assert.ErrorIs(t, err, ErrMissingSnippet)
}
