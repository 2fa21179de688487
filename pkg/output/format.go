package output

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format int

const (
	// FormatJSON renders indented JSON
	FormatJSON Format = iota
	// FormatYAML renders YAML
	FormatYAML
	// FormatTOML renders TOML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// commentPrefix starts a line comment in the format.
func (f Format) commentPrefix() string {
	if f == FormatJSON {
		return "//"
	}
	return "#"
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatJSON.String(), FormatYAML.String(), FormatTOML.String()}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatJSON, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// Encode serializes cfg in the given format. The result always ends with a
// newline.
func Encode(format Format, cfg config.Config) ([]byte, error) {
	raw := cfg.Raw()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(raw, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(raw)
	case FormatTOML:
		data, err = toml.Marshal(raw)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %d", int(format))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode configuration as %s", format)
	}

	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}
