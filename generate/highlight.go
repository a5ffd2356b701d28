// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight writes the GLSL text to w as a standalone HTML page
// highlighted with the named chroma style.
func Highlight(w io.Writer, text, style string) error {
	lexer := lexers.Get("glsl")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return err
	}
	f := html.New(html.Standalone(true), html.WithLineNumbers(true), html.TabWidth(4))
	return f.Format(w, styles.Get(style), it)
}
