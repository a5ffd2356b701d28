// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expand expands signature templates containing generic
// placeholders such as genFType or gsampler into every concrete
// overload they stand for.
package expand

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

var (
	// ErrUnresolvedPlaceholder is returned when an expanded signature
	// still contains a placeholder token, unless the expander is lenient.
	ErrUnresolvedPlaceholder = errors.New("expand: unresolved placeholder")

	// ErrMalformedTemplate is returned when a signature template
	// can not be parsed.
	ErrMalformedTemplate = errors.New("expand: malformed template")
)

// placeholderShape matches the tokens that look like placeholders.
var placeholderShape = regexp.MustCompile(`^(gen[A-Z]\w*|g(vec|sampler|image|texture|subpassInput)\w*)$`)

// IsPlaceholder returns whether the token has the shape of a
// placeholder: gen followed by an upper case letter, or g
// followed by vec, sampler, image, texture, or subpassInput.
func IsPlaceholder(token string) bool {
	return placeholderShape.MatchString(token)
}

// Substitution is one concrete replacement of a placeholder.
type Substitution struct {

	// Text replaces the placeholder token.
	Text string

	// Related maps other tokens to the text that replaces them
	// in the same signature whenever this substitution is chosen,
	// such as genBType to bvec3 when genFType becomes vec3.
	Related map[string]string

	// Guards are the feature guards the resulting signature requires.
	Guards []string
}

// Sub returns a [Substitution] with the given text and guards.
func Sub(text string, guards ...string) Substitution {
	return Substitution{Text: text, Guards: guards}
}

// Placeholder is a placeholder token with its substitutions.
type Placeholder struct {
	Token         string
	Substitutions []Substitution
}

// Signature is one concrete signature produced by an [Expander].
type Signature struct {
	Text   string
	Guards []string
}

func (s Signature) String() string { return s.Text }

// Expander expands templates over an ordered set of placeholders.
// Placeholders are processed in the order they were added. The
// zero value is not usable; use [New].
type Expander struct {

	// Lenient leaves unresolved placeholder tokens in the output
	// as literal text instead of returning [ErrUnresolvedPlaceholder].
	Lenient bool

	placeholders *ordmap.Map[string, []Substitution]
}

// New returns a new strict [Expander] with no placeholders.
func New() *Expander {
	return &Expander{placeholders: ordmap.New[string, []Substitution]()}
}

// Add adds a placeholder with the given substitutions. Adding a
// token again replaces its substitutions but keeps its position.
// It returns the expander for chaining.
func (e *Expander) Add(token string, subs ...Substitution) *Expander {
	e.placeholders.Add(token, subs)
	return e
}

// Placeholders returns the placeholders in processing order.
func (e *Expander) Placeholders() []Placeholder {
	res := make([]Placeholder, 0, e.placeholders.Len())
	for _, kv := range e.placeholders.Order {
		res = append(res, Placeholder{Token: kv.Key, Substitutions: kv.Value})
	}
	return res
}

// Expand parses the signature template and expands it.
// See [Expander.ExpandTemplate].
func (e *Expander) Expand(sig string) ([]Signature, error) {
	t, err := Parse(sig)
	if err != nil {
		return nil, err
	}
	return e.ExpandTemplate(t)
}

type item struct {
	t      *Template
	guards []string
}

// ExpandTemplate returns every concrete signature of the template,
// in order and without deduplication. For each placeholder in turn,
// each partial result containing its token is replaced by one result
// per substitution. Each optional parameter group then yields a
// signature without and one with the group. Parameters that become
// empty are dropped. A template without placeholders or optional
// groups yields itself.
func (e *Expander) ExpandTemplate(t *Template) ([]Signature, error) {
	work := []item{{t: t}}
	for _, kv := range e.placeholders.Order {
		var next []item
		for _, it := range work {
			if !it.t.contains(kv.Key) {
				next = append(next, it)
				continue
			}
			for _, sub := range kv.Value {
				next = append(next, item{
					t:      it.t.substitute(kv.Key, sub),
					guards: appendGuards(it.guards, sub.Guards),
				})
			}
		}
		work = next
	}

	ngroups := t.Optional()
	res := make([]Signature, 0, len(work)<<ngroups)
	for _, it := range work {
		for mask := 0; mask < 1<<ngroups; mask++ {
			text := it.t.render(func(g int) bool { return mask&(1<<(g-1)) != 0 })
			if err := e.check(text, t); err != nil {
				return nil, err
			}
			res = append(res, Signature{Text: text, Guards: it.guards})
		}
	}
	return res, nil
}

// check applies the unresolved placeholder policy to an expanded signature.
func (e *Expander) check(text string, t *Template) error {
	for _, tok := range identifiers(text) {
		if !IsPlaceholder(tok) {
			continue
		}
		if !e.Lenient {
			return fmt.Errorf("%w: %s in %q", ErrUnresolvedPlaceholder, tok, t.String())
		}
		slog.Warn("expand: leaving unresolved placeholder", "token", tok, "signature", text)
	}
	return nil
}

// appendGuards returns the guards followed by those of add
// that are not already present.
func appendGuards(guards, add []string) []string {
	res := slices.Clone(guards)
	for _, g := range add {
		if !slices.Contains(res, g) {
			res = append(res, g)
		}
	}
	return res
}

// contains returns whether any slot of the template has the token.
func (t *Template) contains(token string) bool {
	if slices.Contains(identifiers(t.Return), token) {
		return true
	}
	for _, p := range t.Params {
		if slices.Contains(identifiers(p.Text), token) {
			return true
		}
	}
	return false
}

// substitute returns a copy of the template with the token and
// the related tokens of the substitution replaced.
func (t *Template) substitute(token string, sub Substitution) *Template {
	repl := map[string]string{token: sub.Text}
	for k, v := range sub.Related {
		repl[k] = v
	}
	c := t.clone()
	c.Return = replaceTokens(c.Return, repl)
	for i := range c.Params {
		c.Params[i].Text = strings.TrimSpace(replaceTokens(c.Params[i].Text, repl))
	}
	return c
}

func isIdent(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// identifiers returns the identifier tokens of s.
func identifiers(s string) []string {
	var res []string
	for i := 0; i < len(s); {
		if !isIdent(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isIdent(s[j]) {
			j++
		}
		res = append(res, s[i:j])
		i = j
	}
	return res
}

// replaceTokens replaces whole identifier tokens of s that are
// keys of repl. Substrings of longer identifiers are never replaced.
func replaceTokens(s string, repl map[string]string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if !isIdent(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isIdent(s[j]) {
			j++
		}
		if r, ok := repl[s[i:j]]; ok {
			b.WriteString(r)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	// an empty replacement can leave doubled spaces
	return strings.Join(strings.Fields(b.String()), " ")
}
