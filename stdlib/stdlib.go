// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stdlib accumulates builtin declarations and literal
// snippets and renders them as the GLSL standard library text.
package stdlib

import (
	"slices"
	"strings"
)

// Function is one builtin function declaration.
type Function struct {

	// Signature is the concrete signature, including any trailing ";".
	Signature string

	// Doc is the documentation, rendered as one comment line per line.
	Doc string

	// Guards are the feature guard macros the declaration requires.
	Guards []string
}

// Builder accumulates declarations and snippets in call order.
// It is owned by a single generation run and is not safe for
// concurrent use.
type Builder struct {
	functions []Function
	snippets  []string
}

// NewBuilder returns a new empty [Builder].
func NewBuilder() *Builder {
	return &Builder{}
}

// AddFunction adds a function declaration.
func (b *Builder) AddFunction(sig, doc string, guards ...string) {
	b.functions = append(b.functions, Function{Signature: sig, Doc: doc, Guards: slices.Clone(guards)})
}

// AddSnippet adds a raw text block, rendered verbatim
// before all function declarations.
func (b *Builder) AddSnippet(text string) {
	b.snippets = append(b.snippets, text)
}

// Len returns the number of function declarations.
func (b *Builder) Len() int {
	return len(b.functions)
}

// Functions returns the function declarations in call order.
func (b *Builder) Functions() []Function {
	return b.functions
}

// Snippets returns the snippets in call order.
func (b *Builder) Snippets() []string {
	return b.snippets
}

// Build renders the accumulated text: each snippet followed by a
// newline, then each function as an "#if" line per guard, a "//"
// line per documentation line, the signature, and a single "#endif"
// when it has any guard. A declaration with several guards still
// gets only one "#endif".
func (b *Builder) Build() string {
	var sb strings.Builder
	for _, s := range b.snippets {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	for _, f := range b.functions {
		for _, g := range f.Guards {
			sb.WriteString("#if ")
			sb.WriteString(g)
			sb.WriteByte('\n')
		}
		doc := strings.TrimSpace(f.Doc)
		if doc != "" {
			for line := range strings.Lines(doc) {
				sb.WriteString("// ")
				sb.WriteString(strings.TrimSpace(line))
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(strings.TrimSpace(f.Signature))
		sb.WriteByte('\n')
		if len(f.Guards) > 0 {
			sb.WriteString("#endif\n")
		}
	}
	return sb.String()
}
