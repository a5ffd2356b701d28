// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog assembles the complete catalog of GLSL builtin
// variables and functions, with their documentation, into a
// [stdlib.Builder].
package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/glslstd/expand"
	"cogentcore.org/glslstd/stdlib"
)

var (
	// ErrMissingDoc is returned when a function has no documentation entry.
	ErrMissingDoc = errors.New("catalog: missing documentation")

	// ErrMissingSnippet is returned when a snippet file can not be found.
	ErrMissingSnippet = errors.New("catalog: missing snippet")
)

// Options are the options for [Assemble].
type Options struct {

	// Lenient leaves unresolved placeholders in the output as
	// literal text instead of failing.
	Lenient bool
}

// Report summarizes an assembled catalog.
type Report struct {

	// Snippets is the number of literal snippets.
	Snippets int `yaml:"snippets"`

	// Functions is the total number of function declarations.
	Functions int `yaml:"functions"`

	// Categories are the function counts of each category, in order.
	Categories []CategoryReport `yaml:"categories"`

	// Guards are the feature guard macros used by the catalog,
	// in order of first use.
	Guards []string `yaml:"guards"`
}

// CategoryReport is the function count of one category.
type CategoryReport struct {
	Name      string `yaml:"name"`
	Functions int    `yaml:"functions"`
}

// category is one builtin function category and the function
// adding its declarations.
type category struct {
	name string

	// docs is the documentation table, if other than name.
	docs string

	add func(a *assembler)
}

// functionCategories are the builtin function categories in output order.
var functionCategories = []category{
	{name: "trigonometry", add: addTrigonometry},
	{name: "exponential", add: addExponential},
	{name: "common", add: addCommon},
	{name: "packing", add: addPacking},
	{name: "geometric", add: addGeometric},
	{name: "matrix", add: addMatrix},
	{name: "relational", add: addRelational},
	{name: "integer", add: addInteger},
	{name: "texture", add: addTexture},
	{name: "atomic_counter", add: addAtomicCounter},
	{name: "atomic_memory", add: addAtomicMemory},
	{name: "image", add: addImage},
	{name: "geometry_shader", add: addGeometryShader},
	{name: "fragment_processing", docs: "derivative", add: addFragmentProcessing},
	{name: "noise", add: addNoise},
	{name: "invocation", add: addInvocation},
	{name: "memory", add: addMemory},
	{name: "subpass", add: addSubpass},
	{name: "invocation_group", add: addInvocationGroup},
}

// Assemble adds every builtin variable snippet, builtin function,
// and extension snippet to the builder, in that order.
func Assemble(b *stdlib.Builder, opts Options) (*Report, error) {
	docs, err := LoadDocs()
	if err != nil {
		return nil, err
	}
	a := &assembler{b: b, docs: docs, opts: opts}
	rep := &Report{}

	if err := a.snippets(VariableSnippets); err != nil {
		return nil, err
	}
	for _, c := range functionCategories {
		a.cat = cmp.Or(c.docs, c.name)
		n := b.Len()
		c.add(a)
		if a.err != nil {
			return nil, a.err
		}
		rep.Categories = append(rep.Categories, CategoryReport{Name: c.name, Functions: b.Len() - n})
		logx.PrintlnDebug("catalog:", c.name, b.Len()-n, "functions")
	}
	if err := a.snippets(ExtensionSnippets); err != nil {
		return nil, err
	}

	rep.Snippets = len(b.Snippets())
	rep.Functions = b.Len()
	rep.Guards = guards(b)
	return rep, nil
}

// assembler feeds expanded declarations of the current category
// into the builder. The first error is kept and later calls do nothing.
type assembler struct {
	b    *stdlib.Builder
	docs Docs
	opts Options

	// cat is the documentation table of the current category.
	cat string

	err error
}

// add expands the signature template with the expander,
// which may be nil for a concrete signature, and adds each
// result with the documentation of the given name.
func (a *assembler) add(doc, sig string, e *expand.Expander) {
	if a.err != nil {
		return
	}
	text, err := a.docs.Get(a.cat, doc)
	if err != nil {
		a.err = err
		return
	}
	if e == nil {
		e = expand.New()
	}
	e.Lenient = a.opts.Lenient
	sigs, err := e.Expand(sig)
	if err != nil {
		a.err = fmt.Errorf("catalog: %s: %w", a.cat, err)
		return
	}
	for _, s := range sigs {
		a.b.AddFunction(s.Text, text, s.Guards...)
	}
}

// snippets adds the named snippets.
func (a *assembler) snippets(names []string) error {
	for _, name := range names {
		s, err := Snippet(name)
		if err != nil {
			return err
		}
		a.b.AddSnippet(s)
	}
	return nil
}

// guards returns the guard macros used by the functions and
// the "#if" lines of the snippets, in order of first use.
func guards(b *stdlib.Builder) []string {
	var res []string
	use := func(g string) {
		if !slices.Contains(res, g) {
			res = append(res, g)
		}
	}
	for _, s := range b.Snippets() {
		for line := range strings.Lines(s) {
			if g, ok := strings.CutPrefix(strings.TrimSpace(line), "#if "); ok {
				use(strings.TrimSpace(g))
			}
		}
	}
	for _, f := range b.Functions() {
		for _, g := range f.Guards {
			use(g)
		}
	}
	return res
}
