// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string, f Format) *Config {
	return &Config{Format: f, Package: "glslstd", Variable: "GlslStdlibText", Output: filepath.Join(dir, "out", "stdlib")}
}

func TestOutputFile(t *testing.T) {
	c := &Config{}
	assert.Equal(t, "stdlibgen.go", c.OutputFile())
	c.Format = FormatGLSL
	assert.Equal(t, "stdlib.glsl", c.OutputFile())
	c.Format = FormatCPP
	assert.Equal(t, "Stdlib.Generated.h", c.OutputFile())
	c.Format = FormatHTML
	assert.Equal(t, "stdlib.html", c.OutputFile())
	c.Output = "x.h"
	assert.Equal(t, "x.h", c.OutputFile())
}

func TestFormat(t *testing.T) {
	var f Format
	require.NoError(t, f.SetString("CPP"))
	assert.Equal(t, FormatCPP, f)
	assert.Equal(t, "GLSL", FormatGLSL.String())
	assert.Error(t, f.SetString("Rust"))
	assert.Len(t, FormatValues(), int(FormatN))
}

func TestGenerateGLSL(t *testing.T) {
	dir := t.TempDir()
	c := testConfig(dir, FormatGLSL)
	c.Inventory = filepath.Join(dir, "inventory.yaml")
	require.NoError(t, Generate(c))

	text, rep, err := Build(c)
	require.NoError(t, err)
	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	assert.Equal(t, text, string(b))

	inv, err := ReadInventory(c.Inventory)
	require.NoError(t, err)
	assert.Equal(t, c.Output, inv.Output)
	assert.Equal(t, FormatGLSL, inv.Format)
	assert.Equal(t, rep.Functions, inv.Functions)
	assert.Equal(t, rep.Snippets, inv.Snippets)
	assert.Equal(t, rep.Categories, inv.Categories)
	assert.Equal(t, rep.Guards, inv.Guards)
}

func TestGenerateCPP(t *testing.T) {
	dir := t.TempDir()
	c := testConfig(dir, FormatCPP)
	require.NoError(t, Generate(c))

	text, _, err := Build(c)
	require.NoError(t, err)
	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	want := "// clang-format off\n" +
		"#include <string_view>\n\n" +
		"namespace glsld {\n" +
		"inline std::string_view GlslStdlibText = R\"glsl(\n" +
		text +
		")glsl\";\n" +
		"} // namespace glsld\n" +
		"// clang-format on\n"
	assert.Equal(t, want, string(b))
}

func TestGenerateGo(t *testing.T) {
	dir := t.TempDir()
	c := testConfig(dir, FormatGo)
	c.Output += ".go"
	require.NoError(t, Generate(c))

	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "// Code generated by"))
	assert.Contains(t, s, "package glslstd\n")
	assert.Contains(t, s, "const GlslStdlibText = `const int gl_MaxVertexAttribs = 16;\n")
	assert.Contains(t, s, "void barrier();\n")
	assert.Contains(t, s, "` + \"`\" + `")
	assert.NotContains(t, s, "const GlslStdlibText = \"")
}

func TestGenerateHTML(t *testing.T) {
	dir := t.TempDir()
	c := testConfig(dir, FormatHTML)
	c.Style = "github"
	require.NoError(t, Generate(c))

	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "<html")
	assert.Contains(t, s, "gl_MaxVertexAttribs")
	assert.Contains(t, s, "textureGatherOffsets")
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "`a\nb`", goString("a\nb"))
	assert.Equal(t, "`a ` + \"`\" + `b` + \"`\" + ` c`", goString("a `b` c"))
	assert.Equal(t, "`` + \"`\" + ``", goString("`"))
	assert.Equal(t, "``", goString(""))
}
