// Package registry provides a generic, thread-safe registry keyed by name.
// The loader keeps its format parsers in one, keyed by file extension.
package registry
