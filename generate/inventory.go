// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"os"

	"cogentcore.org/glslstd/catalog"
	"gopkg.in/yaml.v3"
)

// Inventory is a summary of a generated standard library file.
type Inventory struct {
	Output string `yaml:"output"`
	Format Format `yaml:"format"`

	catalog.Report `yaml:",inline"`
}

// WriteInventory writes the YAML inventory of the report to the file.
func WriteInventory(filename string, c *Config, rep *catalog.Report) error {
	inv := Inventory{Output: c.OutputFile(), Format: c.Format, Report: *rep}
	b, err := yaml.Marshal(&inv)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// ReadInventory reads a YAML inventory from the file.
func ReadInventory(filename string) (*Inventory, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	inv := &Inventory{}
	if err := yaml.Unmarshal(b, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
