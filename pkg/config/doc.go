// Package config holds cascade's configuration object model and the merge
// engine that cascades configuration sources into one another.
//
// A configuration is a Config: string keys mapped to Values. A Value is a
// tagged union (absent, scalar, sequence, mapping, or the disabled-plugin
// marker) built once at the load boundary with FromMap/FromRaw, so merging
// never has to sniff the shape of untyped data.
//
// Merge semantics, applied per key of the source:
//
//   - absent values are skipped and never overwrite
//   - the root "plugins" key is a registry of plugin name to options or
//     disabled; a list of names adds empty options, false disables
//   - sequences replace the previous value wholesale
//   - mappings merge recursively
//   - scalars overwrite
package config
