// Package testutil provides utilities for testing cascade components.
//
// Key components:
//   - TestEnvironment: isolates HOME, the XDG directories and CASCADE_*
//     variables, and owns a temporary work tree on the real filesystem
//   - MemoryFS: an afero-backed filesystem.FS seeded from a map of files
//
// Usage guidelines:
//   - Prefer MemoryFS for resolver, loader and discovery tests
//   - Use TestEnvironment only where code reads the real environment
//     (settings, the command line)
//   - All test data should be defined inline, not in external files
package testutil
