package config

import (
	"fmt"
	"reflect"
	"sort"
)

// PluginKey is the reserved root key holding the plugin registry.
const PluginKey = "plugins"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent is an unset value. It never overwrites anything when merged.
	KindAbsent Kind = iota
	// KindScalar is a string, bool, number or any other leaf.
	KindScalar
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a nested configuration object.
	KindMapping
	// KindDisabled marks a plugin as explicitly turned off.
	KindDisabled
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Config is a configuration object: string keys mapped to values.
type Config map[string]Value

// Value is a tagged union over the shapes a configuration entry can take.
// The zero Value is absent.
type Value struct {
	kind    Kind
	scalar  any
	items   []Value
	mapping Config
}

// Scalar wraps a leaf value. A nil v yields an absent value.
func Scalar(v any) Value {
	if v == nil {
		return Value{}
	}
	return Value{kind: KindScalar, scalar: v}
}

// Sequence wraps an ordered list of values.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping wraps a nested configuration. A nil c is treated as empty.
func Mapping(c Config) Value {
	if c == nil {
		c = Config{}
	}
	return Value{kind: KindMapping, mapping: c}
}

// Disabled returns the marker for an explicitly disabled plugin.
func Disabled() Value {
	return Value{kind: KindDisabled}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is unset.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Scalar returns the leaf value, or nil when v is not a scalar.
func (v Value) Scalar() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Items returns the sequence elements, or nil when v is not a sequence.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Mapping returns the nested configuration, or nil when v is not a mapping.
func (v Value) Mapping() Config {
	if v.kind != KindMapping {
		return nil
	}
	return v.mapping
}

// disables reports whether v turns a plugin off: the disabled marker or a
// literal false scalar.
func (v Value) disables() bool {
	if v.kind == KindDisabled {
		return true
	}
	b, ok := v.scalar.(bool)
	return v.kind == KindScalar && ok && !b
}

// String renders v for diagnostics.
func (v Value) String() string {
	return fmt.Sprintf("%v", v.Raw())
}

// FromRaw converts decoded data (as produced by encoding/json, yaml.v3,
// go-toml or the Lua bridge) into a Value. nil becomes absent.
func FromRaw(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case Config:
		return Mapping(x)
	case map[string]any:
		return Mapping(fromMap(x))
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			items = append(items, FromRaw(item))
		}
		return Sequence(items...)
	case string, bool, int, int64, float64:
		return Scalar(x)
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map:
		c := make(Config, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			c[fmt.Sprint(iter.Key().Interface())] = FromRaw(iter.Value().Interface())
		}
		return Mapping(c)
	case reflect.Slice, reflect.Array:
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, FromRaw(rv.Index(i).Interface()))
		}
		return Sequence(items...)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return FromRaw(rv.Elem().Interface())
	}
	return Scalar(raw)
}

// FromMap converts a decoded root configuration. At root scope only,
// entries of a plugins mapping that are literally false become disabled
// markers; a nested options object that happens to contain a "plugins" key
// is left alone.
func FromMap(m map[string]any) Config {
	c := fromMap(m)
	if plugins := c[PluginKey]; plugins.kind == KindMapping {
		for name, entry := range plugins.mapping {
			if entry.disables() {
				plugins.mapping[name] = Disabled()
			}
		}
	}
	return c
}

func fromMap(m map[string]any) Config {
	c := make(Config, len(m))
	for k, raw := range m {
		c[k] = FromRaw(raw)
	}
	return c
}

// Raw converts v back to plain Go data. Disabled becomes false.
func (v Value) Raw() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		out := make([]any, 0, len(v.items))
		for _, item := range v.items {
			out = append(out, item.Raw())
		}
		return out
	case KindMapping:
		return v.mapping.Raw()
	case KindDisabled:
		return false
	default:
		return nil
	}
}

// Raw converts c back to plain Go data, dropping absent entries.
func (c Config) Raw() map[string]any {
	out := make(map[string]any, len(c))
	for k, v := range c {
		if v.kind == KindAbsent {
			continue
		}
		out[k] = v.Raw()
	}
	return out
}

// Keys returns the keys of c in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value at key, following nested mappings for each
// additional key. Missing keys yield an absent value.
func (c Config) Get(key string, rest ...string) Value {
	v := c[key]
	for _, k := range rest {
		if v.kind != KindMapping {
			return Value{}
		}
		v = v.mapping[k]
	}
	return v
}
