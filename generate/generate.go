// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate provides the generation of the GLSL
// standard library file from the builtin catalog.
package generate

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	gengo "cogentcore.org/core/base/generate"
	"cogentcore.org/glslstd/catalog"
	"cogentcore.org/glslstd/stdlib"
)

// Generate is the main entry point to generation: it assembles
// the catalog and writes the output file, and the inventory if
// requested, according to the given config info. Nothing is
// written if assembly fails.
func Generate(c *Config) error {
	text, rep, err := Build(c)
	if err != nil {
		return err
	}
	out := c.OutputFile()
	if err := ensureDir(out); err != nil {
		return err
	}
	if err := Write(c, out, text); err != nil {
		return fmt.Errorf("generate: writing %s: %w", out, err)
	}
	slog.Info("wrote GLSL standard library", "file", out, "format", c.Format, "functions", rep.Functions)

	if c.Inventory == "" {
		return nil
	}
	if err := ensureDir(c.Inventory); err != nil {
		return err
	}
	if err := WriteInventory(c.Inventory, c, rep); err != nil {
		return fmt.Errorf("generate: writing inventory %s: %w", c.Inventory, err)
	}
	slog.Info("wrote inventory", "file", c.Inventory)
	return nil
}

// Build assembles the catalog in memory and returns the
// standard library text with the catalog report.
func Build(c *Config) (string, *catalog.Report, error) {
	b := stdlib.NewBuilder()
	rep, err := catalog.Assemble(b, catalog.Options{Lenient: c.Lenient})
	if err != nil {
		return "", nil, fmt.Errorf("generate: assembling catalog: %w", err)
	}
	return b.Build(), rep, nil
}

// Write writes the text to the file in the configured format.
func Write(c *Config, filename, text string) error {
	switch c.Format {
	case FormatGo:
		b := &bytes.Buffer{}
		gengo.PrintHeader(b, c.Package)
		fmt.Fprintf(b, "// %s is the text of the GLSL standard library.\n", c.Variable)
		fmt.Fprintf(b, "const %s = %s\n", c.Variable, goString(text))
		return gengo.Write(filename, b.Bytes(), nil)
	case FormatCPP:
		b := &bytes.Buffer{}
		b.WriteString("// clang-format off\n")
		b.WriteString("#include <string_view>\n\n")
		b.WriteString("namespace glsld {\n")
		fmt.Fprintf(b, "inline std::string_view %s = R\"glsl(\n", c.Variable)
		b.WriteString(text)
		b.WriteString(")glsl\";\n")
		b.WriteString("} // namespace glsld\n")
		b.WriteString("// clang-format on\n")
		return os.WriteFile(filename, b.Bytes(), 0666)
	case FormatGLSL:
		return os.WriteFile(filename, []byte(text), 0666)
	case FormatHTML:
		b := &bytes.Buffer{}
		if err := Highlight(b, text, c.Style); err != nil {
			return err
		}
		return os.WriteFile(filename, b.Bytes(), 0666)
	}
	return fmt.Errorf("generate: unknown format %v", c.Format)
}

// goString returns a Go string expression of s made of raw
// string literals, joined by "`" around each backquote in s.
func goString(s string) string {
	parts := strings.Split(s, "`")
	for i, p := range parts {
		parts[i] = "`" + p + "`"
	}
	return strings.Join(parts, " + \"`\" + ")
}

// ensureDir makes the directory of the file if it does not exist.
func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if errors.Log1(fsx.FileExists(dir)) {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
