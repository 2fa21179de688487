// Command cascade-completions prints a shell completion script for cascade.
// It is the "completion" subcommand packaged for build scripts that cannot
// call the cascade binary itself:
//
//	cascade-completions zsh > _cascade
package main

import (
	"os"

	"github.com/arthur-debert/cascade/cmd/cascade"
	"github.com/arthur-debert/cascade/pkg/output"
)

func main() {
	rootCmd := cascade.NewRootCmd()
	rootCmd.SetArgs(append([]string{"completion"}, os.Args[1:]...))
	if err := rootCmd.Execute(); err != nil {
		errOut := output.NewRenderer(os.Stderr, output.FormatJSON, !output.DetectColor(os.Stderr))
		_ = errOut.RenderError("", err)
		os.Exit(1)
	}
}
