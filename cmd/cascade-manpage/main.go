// Command cascade-manpage writes one man page per cascade command into the
// given directory (default "."), the same pages "cascade man" produces.
package main

import (
	"os"

	"github.com/arthur-debert/cascade/cmd/cascade"
	"github.com/arthur-debert/cascade/pkg/output"
)

func main() {
	rootCmd := cascade.NewRootCmd()
	rootCmd.SetArgs(append([]string{"man"}, os.Args[1:]...))
	if err := rootCmd.Execute(); err != nil {
		errOut := output.NewRenderer(os.Stderr, output.FormatJSON, !output.DetectColor(os.Stderr))
		_ = errOut.RenderError("", err)
		os.Exit(1)
	}
}
