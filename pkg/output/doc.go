// Package output renders resolved configurations for the command line.
//
// A configuration is encoded as JSON, YAML or TOML. When several files are
// shown, each body is preceded by a header naming the file, written as a
// comment of the chosen format and styled with lipgloss when color is on.
// Color follows the terminal: it is off when stdout is not a TTY, when
// NO_COLOR is set or when termenv reports an ASCII-only profile.
package output
