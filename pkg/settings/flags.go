package settings

import (
	"strings"

	"github.com/arthur-debert/cascade/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseSetting splits a "key=value" assignment. The value is read as YAML,
// so "3" is a number, "true" a boolean and "[a, b]" a list. Anything that
// is not a number, boolean or flow collection stays a string, which keeps
// markdown-ish values such as "*" and "-" intact.
func ParseSetting(assignment string) (string, interface{}, error) {
	key, raw, ok := strings.Cut(assignment, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, errors.Newf(errors.ErrInvalidInput, "invalid setting %q, expected key=value", assignment)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return key, "", nil
	}
	flow := strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")

	var value interface{}
	if err := yaml.Unmarshal([]byte(trimmed), &value); err != nil {
		if flow {
			return "", nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid value for setting %s", key)
		}
		return key, trimmed, nil
	}

	switch value.(type) {
	case []interface{}, map[string]interface{}:
		if !flow {
			return key, trimmed, nil
		}
	}
	return key, value, nil
}

// SettingsFlags turns repeated key=value assignments into flag overrides
// under the settings key.
func SettingsFlags(assignments []string) (map[string]interface{}, error) {
	flags := make(map[string]interface{}, len(assignments))
	for _, assignment := range assignments {
		key, value, err := ParseSetting(assignment)
		if err != nil {
			return nil, err
		}
		flags[KeySettings+"."+key] = value
	}
	return flags, nil
}
