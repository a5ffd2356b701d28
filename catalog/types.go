// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"cogentcore.org/glslstd/expand"
	"cogentcore.org/glslstd/gentype"
)

// genTypes returns an expander whose genType placeholder stands
// for every vector of the families with at least minDim components,
// scalars included when minDim is 1. Each substitution also sets
// genScalar to the scalar type and genBType, genIType, and genUType
// to the bool, int, and uint vectors of the same dimension.
func genTypes(minDim int, fams ...gentype.Family) *expand.Expander {
	var subs []expand.Substitution
	for v := range gentype.Vectors(fams...) {
		if v.Dim < minDim {
			continue
		}
		subs = append(subs, expand.Substitution{
			Text: v.String(),
			Related: map[string]string{
				"genScalar": v.Scalar(),
				"genBType":  v.AsBool().String(),
				"genIType":  v.AsInt().String(),
				"genUType":  v.AsUint().String(),
			},
			Guards: v.Guards(),
		})
	}
	return expand.New().Add("genType", subs...)
}

// genMats returns an expander whose genMat placeholder stands for
// every matrix of the families, or only the square ones. Each
// substitution also sets genMatT to the transposed matrix, genColumn
// and genRow to its column and row vectors, and genScalar.
func genMats(square bool, fams ...gentype.Family) *expand.Expander {
	var subs []expand.Substitution
	for m := range gentype.Matrices(fams...) {
		if square && !m.IsSquare() {
			continue
		}
		subs = append(subs, expand.Substitution{
			Text: m.String(),
			Related: map[string]string{
				"genMatT":   m.Transposed().String(),
				"genColumn": m.ColumnVector().String(),
				"genRow":    m.RowVector().String(),
				"genScalar": m.Scalar(),
			},
			Guards: m.Guards(),
		})
	}
	return expand.New().Add("genMat", subs...)
}

// subs returns plain substitutions for each text.
func subs(texts ...string) []expand.Substitution {
	res := make([]expand.Substitution, len(texts))
	for i, t := range texts {
		res[i] = expand.Sub(t)
	}
	return res
}
