package config

import "fmt"

// Merge merges source into target and returns target, allocating it when
// nil. Later merges win: scalars are overwritten, mappings are merged
// recursively and sequences are replaced wholesale. The root "plugins" key
// is treated as a plugin registry (see mergePlugins). Absent values never
// overwrite existing keys.
func Merge(target, source Config) Config {
	return merge(target, source, false)
}

// merge is Merge with an explicit scope. nested is true while merging the
// inside of any mapping, which keeps an options object with a "plugins" key
// from being mistaken for the registry.
func merge(target, source Config, nested bool) Config {
	if target == nil {
		target = Config{}
	}

	for key, value := range source {
		if value.kind == KindAbsent {
			continue
		}

		if key == PluginKey && !nested {
			target[key] = Mapping(mergePlugins(target[key].Mapping(), value))
			continue
		}

		switch value.kind {
		case KindSequence:
			target[key] = Sequence(flatten(value.items)...)
		case KindMapping:
			target[key] = Mapping(merge(target[key].Mapping(), value.mapping, true))
		default:
			target[key] = value
		}
	}

	return target
}

// mergePlugins folds a plugin declaration into the registry. A sequence of
// names adds empty options for names not yet present. A mapping disables
// names given false and merges options for the rest, so within one call
// false always wins, while a later call can re-enable a plugin by supplying
// options.
func mergePlugins(registry Config, declared Value) Config {
	if registry == nil {
		registry = Config{}
	}

	switch declared.kind {
	case KindSequence:
		for _, item := range declared.items {
			name, ok := pluginName(item)
			if !ok {
				continue
			}
			if _, exists := registry[name]; !exists {
				registry[name] = Mapping(Config{})
			}
		}
	case KindMapping:
		for name, options := range declared.mapping {
			if options.disables() {
				registry[name] = Disabled()
				continue
			}
			registry[name] = Mapping(merge(registry[name].Mapping(), options.Mapping(), true))
		}
	}

	return registry
}

// pluginName extracts a plugin name from a sequence entry. Only scalars name
// plugins; nested structures are ignored.
func pluginName(v Value) (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	if s, ok := v.scalar.(string); ok {
		return s, s != ""
	}
	return fmt.Sprint(v.scalar), true
}

// flatten returns a shallow copy of items with one level of nested
// sequences spliced in place.
func flatten(items []Value) []Value {
	out := make([]Value, 0, len(items))
	for _, item := range items {
		if item.kind == KindSequence {
			out = append(out, item.items...)
			continue
		}
		out = append(out, item)
	}
	return out
}
