package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func parseJSON(name string, data []byte) (map[string]any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return asMapping(raw)
}

func parseYAML(name string, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	return asMapping(raw)
}

func parseTOML(name string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// asMapping rejects documents whose top level is not an object.
func asMapping(raw any) (map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration must be a mapping, got %s", describe(raw))
	}
	return m, nil
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case []any:
		return "a sequence"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
