// Package filesystem provides the read-only filesystem view that cascade's
// loader and discovery walk use.
//
// This package contains the standard OS implementation and an afero-backed
// implementation used with in-memory filesystems in tests.
package filesystem
