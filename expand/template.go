// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expand

import (
	"fmt"
	"strings"
)

// Template is a function signature split into typed slots:
// the return type, the name, the parameters, and the trailing
// punctuation. Parameters written in GLSL manual notation as
// "[, float bias]" are optional.
type Template struct {

	// Return is the return type, with any qualifiers.
	Return string

	// Name is the function name.
	Name string

	// Params are the parameters in order.
	Params []Param

	// Suffix is the text after the closing parenthesis, usually ";".
	Suffix string
}

// Param is one function parameter of a [Template].
type Param struct {

	// Text is the parameter declaration, such as "out genIType exp".
	Text string

	// Group is the optional group the parameter belongs to,
	// or 0 for a required parameter. All parameters of a
	// group are present or absent together.
	Group int
}

// Parse parses a signature such as
//
//	genFType texture(gsampler sampler_, genCoord P[, float bias]);
//
// into a [Template].
func Parse(sig string) (*Template, error) {
	sig = strings.TrimSpace(sig)
	lp := strings.IndexByte(sig, '(')
	rp := strings.LastIndexByte(sig, ')')
	if lp < 0 || rp < lp {
		return nil, fmt.Errorf("%w: missing parameter list in %q", ErrMalformedTemplate, sig)
	}
	head := strings.TrimSpace(sig[:lp])
	sp := strings.LastIndexAny(head, " \t")
	if sp < 0 {
		return nil, fmt.Errorf("%w: missing return type in %q", ErrMalformedTemplate, sig)
	}
	t := &Template{
		Return: strings.TrimSpace(head[:sp]),
		Name:   head[sp+1:],
		Suffix: strings.TrimSpace(sig[rp+1:]),
	}
	params, err := parseParams(sig[lp+1 : rp])
	if err != nil {
		return nil, fmt.Errorf("%w in %q", err, sig)
	}
	t.Params = params
	return t, nil
}

// parseParams splits a parameter list on commas, treating a "[,"
// bracket as the start of an optional group. Other brackets are
// array sizes and stay in the parameter text.
func parseParams(s string) ([]Param, error) {
	var params []Param
	var cur strings.Builder
	group, ngroups := 0, 0
	depth := 0 // array bracket depth
	flush := func() {
		txt := strings.TrimSpace(cur.String())
		cur.Reset()
		if txt != "" {
			params = append(params, Param{Text: txt, Group: group})
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '[' && strings.HasPrefix(strings.TrimLeft(s[i+1:], " \t"), ","):
			if group != 0 {
				return nil, fmt.Errorf("%w: nested optional parameters", ErrMalformedTemplate)
			}
			flush()
			ngroups++
			group = ngroups
			// skip the leading comma of the group
			i += strings.IndexByte(s[i:], ',')
		case c == '[':
			depth++
			cur.WriteByte(c)
		case c == ']' && depth > 0:
			depth--
			cur.WriteByte(c)
		case c == ']':
			if group == 0 {
				return nil, fmt.Errorf("%w: unbalanced ]", ErrMalformedTemplate)
			}
			flush()
			group = 0
		case c == ',' && depth == 0:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if group != 0 || depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced [", ErrMalformedTemplate)
	}
	flush()
	return params, nil
}

// Optional returns the number of optional parameter groups.
func (t *Template) Optional() int {
	n := 0
	for _, p := range t.Params {
		n = max(n, p.Group)
	}
	return n
}

// String renders the template back to signature text,
// with optional groups in bracket notation.
func (t *Template) String() string {
	var b strings.Builder
	b.WriteString(t.Return)
	b.WriteByte(' ')
	b.WriteString(t.Name)
	b.WriteByte('(')
	group := 0
	for i, p := range t.Params {
		if p.Group != group && group != 0 {
			b.WriteByte(']')
		}
		switch {
		case p.Group != 0 && p.Group != group:
			b.WriteString("[, ")
		case i > 0:
			b.WriteString(", ")
		}
		group = p.Group
		b.WriteString(p.Text)
	}
	if group != 0 {
		b.WriteByte(']')
	}
	b.WriteByte(')')
	b.WriteString(t.Suffix)
	return b.String()
}

// render returns the signature text with the given
// optional groups present.
func (t *Template) render(present func(group int) bool) string {
	var b strings.Builder
	b.WriteString(t.Return)
	b.WriteByte(' ')
	b.WriteString(t.Name)
	b.WriteByte('(')
	n := 0
	for _, p := range t.Params {
		if p.Text == "" || (p.Group != 0 && !present(p.Group)) {
			continue
		}
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Text)
		n++
	}
	b.WriteByte(')')
	b.WriteString(t.Suffix)
	return b.String()
}

// clone returns a deep copy of the template.
func (t *Template) clone() *Template {
	c := *t
	c.Params = append([]Param(nil), t.Params...)
	return &c
}
