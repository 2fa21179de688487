package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer writes configurations to a writer.
type Renderer struct {
	writer   io.Writer
	format   Format
	renderer *lipgloss.Renderer
	styles   styles
}

// NewRenderer creates a Renderer. With noColor set every style is reduced
// to plain text; otherwise the color profile is detected from w.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	log := logging.GetLogger("output")

	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Str("format", format.String()).
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Creating renderer")

	return &Renderer{
		writer:   w,
		format:   format,
		renderer: renderer,
		styles:   newStyles(renderer),
	}
}

// SetColorProfile overrides the detected color profile.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.renderer.SetColorProfile(p)
}

// Format returns the encoding the renderer writes.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderConfig writes cfg without a header.
func (r *Renderer) RenderConfig(cfg config.Config) error {
	data, err := Encode(r.format, cfg)
	if err != nil {
		return err
	}
	_, err = r.writer.Write(data)
	return err
}

// RenderFile writes a header naming path followed by cfg.
func (r *Renderer) RenderFile(path string, cfg config.Config) error {
	header := r.styles.header.Render(r.format.commentPrefix()) + " " + r.styles.path.Render(path)
	if _, err := fmt.Fprintln(r.writer, header); err != nil {
		return err
	}
	return r.RenderConfig(cfg)
}

// RenderError writes a styled error line, naming path when given.
func (r *Renderer) RenderError(path string, err error) error {
	line := r.styles.err.Render("Error:") + " "
	if path != "" {
		line += r.styles.path.Render(path) + ": "
	}
	line += err.Error()

	_, writeErr := fmt.Fprintln(r.writer, line)
	return writeErr
}

// RenderMessage writes a muted informational line.
func (r *Renderer) RenderMessage(message string) error {
	_, err := fmt.Fprintln(r.writer, r.styles.muted.Render(message))
	return err
}

// DetectColor reports whether styled output should be written to f.
func DetectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
