// Package loader reads configuration files into config.Config values.
//
// The format is chosen by file extension: JSON (and extensionless rc
// files), YAML, TOML, and Lua modules. A Lua module is evaluated in a
// sandbox with no filesystem, OS, or module-loading access, and the table
// it returns becomes the configuration.
package loader
