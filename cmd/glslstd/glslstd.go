// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glslstd generates the GLSL standard library: the
// builtin variables and every concrete overload of the builtin
// functions, with their documentation and feature guards.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/glslstd/generate"
)

func main() {
	opts := cli.DefaultOptions("glslstd", "Glslstd generates the GLSL standard library declarations with documentation and feature guards.")
	cli.Run(opts, &generate.Config{}, generate.Generate)
}
