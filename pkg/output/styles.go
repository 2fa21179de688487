package output

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for light and dark terminals
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}
)

// styles are bound to one lipgloss renderer so color detection follows the
// writer they print to.
type styles struct {
	header lipgloss.Style
	path   lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Foreground(MutedColor),
		path: r.NewStyle().
			Foreground(PathColor).
			Bold(true),
		err: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		muted: r.NewStyle().Foreground(MutedColor),
	}
}
