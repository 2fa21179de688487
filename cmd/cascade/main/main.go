package main

import (
	"os"

	"github.com/arthur-debert/cascade/cmd/cascade"
	"github.com/arthur-debert/cascade/pkg/output"
)

func main() {
	rootCmd := cascade.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errOut := output.NewRenderer(os.Stderr, output.FormatJSON, !output.DetectColor(os.Stderr))
		_ = errOut.RenderError("", err)
		os.Exit(1)
	}
}
