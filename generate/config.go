// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

//go:generate core generate

// Format is the format of the generated standard library file.
type Format int32 //enums:enum -trim-prefix Format

const (
	// FormatGo is a Go source file declaring the text as a constant.
	FormatGo Format = iota

	// FormatGLSL is the bare GLSL text.
	FormatGLSL

	// FormatCPP is a C++ header declaring the text as an inline
	// std::string_view.
	FormatCPP

	// FormatHTML is a standalone HTML page of the syntax highlighted text.
	FormatHTML
)

// Config contains the configuration information
// used by glslstd
type Config struct {

	// the output file; if empty, stdlibgen.go, stdlib.glsl,
	// Stdlib.Generated.h, or stdlib.html depending on the format
	Output string `posarg:"0" required:"-"`

	// the format of the output file
	Format Format `default:"Go"`

	// the package name of the generated Go file
	Package string `default:"glslstd"`

	// the name of the Go constant or C++ variable holding the text
	Variable string `default:"GlslStdlibText"`

	// the chroma style of the HTML format
	Style string `default:"github"`

	// whether to leave unresolved placeholders in the output as literal text instead of failing
	Lenient bool

	// if specified, the file to write a YAML inventory of the generated catalog to
	Inventory string
}

// OutputFile returns the output file, defaulting by format.
func (c *Config) OutputFile() string {
	if c.Output != "" {
		return c.Output
	}
	switch c.Format {
	case FormatGLSL:
		return "stdlib.glsl"
	case FormatCPP:
		return "Stdlib.Generated.h"
	case FormatHTML:
		return "stdlib.html"
	}
	return "stdlibgen.go"
}
