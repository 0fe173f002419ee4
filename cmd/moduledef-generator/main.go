// Package main provides the CLI entrypoint for moduledef-generator.
//
// moduledef-generator compiles declarative module descriptions into
// module definition code:
//   - Reads YAML or TOML description files
//   - Orders modules and detects forward references
//   - Emits full definitions or partial declarations plus .d.ts types
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
