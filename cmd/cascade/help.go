package cascade

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/cascade/pkg/cobrax/topics"
	"github.com/arthur-debert/cascade/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// helpTopics returns the embedded topic files rooted at the topics directory.
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		// embed.FS always contains the directory named in the pattern
		panic(err)
	}
	return sub
}

// initHelpTopics installs the topic-aware help command. Markdown is rendered
// with glamour, without color when stdout is not a color terminal.
func initHelpTopics(rootCmd *cobra.Command) {
	renderer := topics.NewPlainGlamourRenderer()
	if output.DetectColor(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
