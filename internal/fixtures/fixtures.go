// Package fixtures holds the fixed set of sample files the tool writes.
// The set is decided at build time; no runtime input changes a name or a byte
// of content.
package fixtures

import (
	"fmt"

	"github.com/zoro11031/fixture-setup/internal/common"
)

// Fixture is one sample file: a bare name inside the destination directory
// and its literal content.
type Fixture struct {
	Name        string
	Description string
	Content     []byte
}

// Size returns the exact byte length of the fixture content
func (f Fixture) Size() int64 {
	return int64(len(f.Content))
}

var set = []Fixture{
	{
		Name:        "notes.txt",
		Description: "Plain text note",
		Content:     []byte("This is a test note about neural networks and machine learning.\nDeep learning is a subset of ML."),
	},
	{
		Name:        "readme.md",
		Description: "Markdown document",
		Content:     []byte("# Test Readme\n\nThis is a markdown document about transformers and attention mechanisms."),
	},
	{
		Name:        "model.py",
		Description: "Python linear model snippet",
		Content: []byte("import torch\n" +
			"import torch.nn as nn\n" +
			"\n" +
			"class SimpleModel(nn.Module):\n" +
			"    def __init__(self):\n" +
			"        super().__init__()\n" +
			"        self.linear = nn.Linear(10, 1)\n" +
			"\n" +
			"    def forward(self, x):\n" +
			"        return self.linear(x)\n"),
	},
	{
		Name:        "config.json",
		Description: "JSON model config",
		Content:     []byte(`{"model": "gpt-4", "temperature": 0.7, "max_tokens": 1000}`),
	},
	{
		Name:        "data.csv",
		Description: "CSV table",
		Content:     []byte("name,age,city\nAlice,30,NYC\nBob,25,LA\nCharlie,35,Chicago"),
	},
	{
		Name:        "utils.ts",
		Description: "TypeScript helpers",
		Content: []byte("export function add(a: number, b: number): number {\n" +
			"  return a + b;\n" +
			"}\n" +
			"\n" +
			"export const PI = 3.14159;\n"),
	},
	{
		Name:        "shell_script.sh",
		Description: "Bash script",
		Content:     []byte("#!/bin/bash\necho \"Hello World\"\nls -la\n"),
	},
}

// All returns the fixture set in write order. The result is a copy and may
// be modified by the caller.
func All() []Fixture {
	out := make([]Fixture, len(set))
	for i, f := range set {
		f.Content = append([]byte(nil), f.Content...)
		out[i] = f
	}
	return out
}

// Names returns the fixture names in write order
func Names() []string {
	names := make([]string, len(set))
	for i, f := range set {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the fixture with the given name
func Lookup(name string) (Fixture, bool) {
	for _, f := range All() {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// Validate checks that every name is a bare file name and that no name repeats
func Validate(list []Fixture) error {
	seen := make(map[string]struct{}, len(list))
	for _, f := range list {
		if err := common.ValidateFileName(f.Name); err != nil {
			return fmt.Errorf("invalid fixture: %w", err)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("duplicate fixture name: %s", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
