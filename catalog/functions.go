// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "cogentcore.org/glslstd/gentype"

var (
	floatDouble = gentype.Join(gentype.FloatFamilies, gentype.DoubleFamilies)
	integers    = gentype.Join(gentype.IntFamilies, gentype.UintFamilies)
	numeric     = gentype.Join(gentype.FloatFamilies, gentype.DoubleFamilies, gentype.IntFamilies, gentype.UintFamilies)
)

func addTrigonometry(a *assembler) {
	e := genTypes(1, gentype.FloatFamilies...)
	a.add("radians", "genType radians(genType degrees);", e)
	a.add("degrees", "genType degrees(genType radians);", e)
	for _, name := range []string{"sin", "cos", "tan", "asin", "acos"} {
		a.add(name, "genType "+name+"(genType x);", e)
	}
	a.add("atan", "genType atan(genType y, genType x);", e)
	a.add("atan", "genType atan(genType y_over_x);", e)
	for _, name := range []string{"sinh", "cosh", "tanh", "asinh", "acosh", "atanh"} {
		a.add(name, "genType "+name+"(genType x);", e)
	}
}

func addExponential(a *assembler) {
	e := genTypes(1, gentype.FloatFamilies...)
	a.add("pow", "genType pow(genType x, genType y);", e)
	for _, name := range []string{"exp", "log", "exp2", "log2"} {
		a.add(name, "genType "+name+"(genType x);", e)
	}
	e = genTypes(1, floatDouble...)
	a.add("sqrt", "genType sqrt(genType x);", e)
	a.add("inversesqrt", "genType inversesqrt(genType x);", e)
}

func addCommon(a *assembler) {
	e := genTypes(1, gentype.Join(gentype.FloatFamilies, gentype.DoubleFamilies, gentype.IntFamilies)...)
	a.add("abs", "genType abs(genType x);", e)
	a.add("sign", "genType sign(genType x);", e)

	e = genTypes(1, floatDouble...)
	for _, name := range []string{"floor", "trunc", "round", "roundEven", "ceil", "fract"} {
		a.add(name, "genType "+name+"(genType x);", e)
	}
	a.add("mod", "genType mod(genType x, genScalar y);", e)
	a.add("mod", "genType mod(genType x, genType y);", e)
	a.add("modf", "genType modf(genType x, out genType i);", e)

	e = genTypes(1, numeric...)
	a.add("min", "genType min(genType x, genType y);", e)
	a.add("min", "genType min(genType x, genScalar y);", e)
	a.add("max", "genType max(genType x, genType y);", e)
	a.add("max", "genType max(genType x, genScalar y);", e)
	a.add("clamp", "genType clamp(genType x, genType minVal, genType maxVal);", e)
	a.add("clamp", "genType clamp(genType x, genScalar minVal, genScalar maxVal);", e)

	e = genTypes(1, floatDouble...)
	a.add("mix_linear", "genType mix(genType x, genType y, genType a);", e)
	a.add("mix_linear", "genType mix(genType x, genType y, genScalar a);", e)
	a.add("mix_select", "genType mix(genType x, genType y, genBType a);",
		genTypes(1, gentype.Join(numeric, gentype.BoolFamilies)...))
	a.add("step", "genType step(genType edge, genType x);", e)
	a.add("step", "genType step(genScalar edge, genType x);", e)
	a.add("smoothstep", "genType smoothstep(genType edge0, genType edge1, genType x);", e)
	a.add("smoothstep", "genType smoothstep(genScalar edge0, genScalar edge1, genType x);", e)
	a.add("isnan", "genBType isnan(genType x);", e)
	a.add("isinf", "genBType isinf(genType x);", e)

	bits := genTypes(1, gentype.Float)
	a.add("floatBitsToInt", "highp genIType floatBitsToInt(highp genType value);", bits)
	a.add("floatBitsToUint", "highp genUType floatBitsToUint(highp genType value);", bits)
	a.add("intBitsToFloat", "highp genType intBitsToFloat(highp genIType value);", bits)
	a.add("uintBitsToFloat", "highp genType uintBitsToFloat(highp genUType value);", bits)

	a.add("fma", "genType fma(genType a, genType b, genType c);", e)
	a.add("frexp", "genType frexp(highp genType x, out highp genIType exp);", e)
	a.add("ldexp", "genType ldexp(highp genType x, highp genIType exp);", e)
}

func addPacking(a *assembler) {
	a.add("pack", "highp uint packUnorm2x16(vec2 v);", nil)
	a.add("pack", "highp uint packSnorm2x16(vec2 v);", nil)
	a.add("pack", "uint packUnorm4x8(vec4 v);", nil)
	a.add("pack", "uint packSnorm4x8(vec4 v);", nil)
	a.add("unpack", "vec2 unpackUnorm2x16(highp uint p);", nil)
	a.add("unpack", "vec2 unpackSnorm2x16(highp uint p);", nil)
	a.add("unpack", "vec4 unpackUnorm4x8(highp uint p);", nil)
	a.add("unpack", "vec4 unpackSnorm4x8(highp uint p);", nil)
	a.add("packHalf", "uint packHalf2x16(vec2 v);", nil)
	a.add("unpackHalf", "vec2 unpackHalf2x16(uint v);", nil)
	a.add("packDouble", "double packDouble2x32(uvec2 v);", nil)
	a.add("unpackDouble", "uvec2 unpackDouble2x32(double v);", nil)
}

func addGeometric(a *assembler) {
	e := genTypes(1, floatDouble...)
	a.add("length", "genScalar length(genType x);", e)
	a.add("distance", "genScalar distance(genType p0, genType p1);", e)
	a.add("dot", "genScalar dot(genType x, genType y);", e)
	a.add("cross", "vec3 cross(vec3 x, vec3 y);", nil)
	a.add("cross", "dvec3 cross(dvec3 x, dvec3 y);", nil)
	a.add("normalize", "genType normalize(genType x);", e)
	a.add("ftransform", "vec4 ftransform();", nil)
	a.add("faceforward", "genType faceforward(genType N, genType I, genType Nref);", e)
	a.add("reflect", "genType reflect(genType I, genType N);", e)
	a.add("refract", "genType refract(genType I, genType N, genScalar eta);", e)
}

func addMatrix(a *assembler) {
	e := genMats(false, floatDouble...)
	a.add("matrixCompMult", "genMat matrixCompMult(genMat x, genMat y);", e)
	a.add("outerProduct", "genMat outerProduct(genColumn c, genRow r);", e)
	a.add("transpose", "genMatT transpose(genMat m);", e)

	e = genMats(true, floatDouble...)
	a.add("determinant", "genScalar determinant(genMat m);", e)
	a.add("inverse", "genMat inverse(genMat m);", e)
}

func addRelational(a *assembler) {
	e := genTypes(2, numeric...)
	for _, name := range []string{"lessThan", "lessThanEqual", "greaterThan", "greaterThanEqual"} {
		a.add(name, "genBType "+name+"(genType x, genType y);", e)
	}
	e = genTypes(2, gentype.Join(numeric, gentype.BoolFamilies)...)
	a.add("equal", "genBType equal(genType x, genType y);", e)
	a.add("notEqual", "genBType notEqual(genType x, genType y);", e)

	e = genTypes(2, gentype.BoolFamilies...)
	a.add("any", "bool any(genType x);", e)
	a.add("all", "bool all(genType x);", e)
	a.add("not", "genType not(genType x);", e)
}

func addInteger(a *assembler) {
	e := genTypes(1, gentype.UintFamilies...)
	a.add("uaddCarry", "highp genType uaddCarry(highp genType x, highp genType y, out lowp genType carry);", e)
	a.add("usubBorrow", "highp genType usubBorrow(highp genType x, highp genType y, out lowp genType borrow);", e)
	a.add("mulExtended", "void umulExtended(highp genType x, highp genType y, out highp genType msb, out highp genType lsb);", e)
	a.add("mulExtended", "void imulExtended(highp genType x, highp genType y, out highp genType msb, out highp genType lsb);",
		genTypes(1, gentype.IntFamilies...))

	e = genTypes(1, integers...)
	a.add("bitfieldExtract", "genType bitfieldExtract(genType value, int offset, int bits);", e)
	a.add("bitfieldInsert", "genType bitfieldInsert(genType base, genType insert, int offset, int bits);", e)
	a.add("bitfieldReverse", "highp genType bitfieldReverse(highp genType value);", e)
	a.add("bitCount", "genIType bitCount(genType value);", e)
	a.add("findLSB", "genIType findLSB(genType value);", e)
	a.add("findMSB", "genIType findMSB(highp genType value);", e)
}
