// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"cogentcore.org/glslstd/expand"
	"cogentcore.org/glslstd/gentype"
)

var atomicCounterOps = []string{"Add", "Subtract", "Min", "Max", "And", "Or", "Xor", "Exchange"}

func addAtomicCounter(a *assembler) {
	a.add("atomicCounterIncrement", "uint atomicCounterIncrement(atomic_uint c);", nil)
	a.add("atomicCounterDecrement", "uint atomicCounterDecrement(atomic_uint c);", nil)
	a.add("atomicCounter", "uint atomicCounter(atomic_uint c);", nil)
	for _, op := range atomicCounterOps {
		name := "atomicCounter" + op
		a.add(name, "uint "+name+"(atomic_uint c, uint data);", nil)
	}
	a.add("atomicCounterCompSwap", "uint atomicCounterCompSwap(atomic_uint c, uint compare, uint data);", nil)
}

func addAtomicMemory(a *assembler) {
	e := expand.New().Add("genScalar", subs("uint", "int")...)
	for _, op := range []string{"Add", "Min", "Max", "And", "Or", "Xor", "Exchange"} {
		name := "atomic" + op
		a.add(name, "genScalar "+name+"(inout genScalar mem, genScalar data);", e)
	}
	a.add("atomicCompSwap", "genScalar atomicCompSwap(inout genScalar mem, genScalar compare, genScalar data);", e)
}

func addGeometryShader(a *assembler) {
	a.add("EmitStreamVertex", "void EmitStreamVertex(int stream);", nil)
	a.add("EndStreamPrimitive", "void EndStreamPrimitive(int stream);", nil)
	a.add("EmitVertex", "void EmitVertex();", nil)
	a.add("EndPrimitive", "void EndPrimitive();", nil)
}

// addFragmentProcessing adds the derivative functions and then
// the interpolation functions, each with its own documentation.
func addFragmentProcessing(a *assembler) {
	e := genTypes(1, gentype.FloatFamilies...)
	for _, name := range []string{"dFdx", "dFdy", "dFdxFine", "dFdyFine", "dFdxCoarse", "dFdyCoarse", "fwidth", "fwidthFine", "fwidthCoarse"} {
		a.add(name, "genType "+name+"(genType p);", e)
	}

	a.cat = "interpolation"
	e = genTypes(1, gentype.Float)
	a.add("interpolateAtCentroid", "genType interpolateAtCentroid(genType interpolant);", e)
	a.add("interpolateAtSample", "genType interpolateAtSample(genType interpolant, int sample);", e)
	a.add("interpolateAtOffset", "genType interpolateAtOffset(genType interpolant, vec2 offset);", e)
}

// addNoise adds nothing: the noise functions are deprecated
// and are not declared.
func addNoise(a *assembler) {}

func addInvocation(a *assembler) {
	a.add("barrier", "void barrier();", nil)
}

func addMemory(a *assembler) {
	for _, name := range []string{"memoryBarrier", "memoryBarrierAtomicCounter", "memoryBarrierBuffer", "memoryBarrierShared", "memoryBarrierImage", "groupMemoryBarrier"} {
		a.add(name, "void "+name+"();", nil)
	}
}

func addSubpass(a *assembler) {
	for _, f := range []gentype.Family{gentype.Float, gentype.Int, gentype.Uint} {
		p := f.Prefix()
		e := expand.New().
			Add("gsubpassInput", expand.Sub(p+"subpassInput")).
			Add("gsubpassInputMS", expand.Sub(p+"subpassInputMS")).
			Add("gvec4", expand.Sub(p+"vec4"))
		a.add("subpassLoad", "gvec4 subpassLoad(gsubpassInput subpass);", e)
		a.add("subpassLoad", "gvec4 subpassLoad(gsubpassInputMS subpass, int sample);", e)
	}
}

func addInvocationGroup(a *assembler) {
	a.add("anyInvocation", "bool anyInvocation(bool value);", nil)
	a.add("allInvocations", "bool allInvocations(bool value);", nil)
	a.add("allInvocationsEqual", "bool allInvocationsEqual(bool value);", nil)
}
