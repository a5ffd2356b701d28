// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/pelletier/go-toml/v2"
)

//go:embed docs.toml
var docsTOML []byte

//go:embed snippets/*.glsl
var snippetFS embed.FS

// VariableSnippets are the names of the builtin variable snippets,
// in output order: constants, then one per shader stage.
var VariableSnippets = []string{
	"constants",
	"vertex",
	"fragment",
	"compute",
	"geometry",
	"tess_control",
	"tess_evaluation",
	"ray_tracing_ext",
	"ray_tracing_nv",
}

// ExtensionSnippets are the names of the extension snippets, in output order.
var ExtensionSnippets = []string{
	"ext_ray_query",
	"khr_memory_scope_semantics",
	"nv_shader_sm_builtins",
}

// Snippet returns the text of the named snippet.
func Snippet(name string) (string, error) {
	b, err := fs.ReadFile(snippetFS, "snippets/"+name+".glsl")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingSnippet, name, err)
	}
	return string(b), nil
}

// Docs is the documentation of the builtin functions,
// by category and then by name.
type Docs map[string]map[string]string

// LoadDocs decodes the embedded documentation.
func LoadDocs() (Docs, error) {
	var d Docs
	if err := toml.Unmarshal(docsTOML, &d); err != nil {
		return nil, fmt.Errorf("catalog: decoding documentation: %w", err)
	}
	return d, nil
}

// Get returns the documentation of the named function in the category.
func (d Docs) Get(category, name string) (string, error) {
	doc, ok := d[category][name]
	if !ok {
		if s := d.suggest(category, name); s != "" {
			return "", fmt.Errorf("%w: %s/%s (did you mean %s?)", ErrMissingDoc, category, name, s)
		}
		return "", fmt.Errorf("%w: %s/%s", ErrMissingDoc, category, name)
	}
	return strings.TrimSpace(doc), nil
}

// suggest returns the documented name of the category most
// similar to name, or "" if none is close.
func (d Docs) suggest(category, name string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.6
	for _, n := range slices.Sorted(maps.Keys(d[category])) {
		if s := strutil.Similarity(name, n, lev); s > score {
			best, score = n, s
		}
	}
	return best
}
