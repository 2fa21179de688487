// Package resolver computes the effective configuration for a file.
//
// A Resolver is built once per run from Options. Construction loads the
// optional override file. Each Resolve call maps the target file to its
// directory and answers from a per-directory cache:
//
//   - no slot: a pending slot is created and discovery starts on its own
//     goroutine
//   - pending slot: the callback joins the queue, so one walk serves every
//     file in the directory
//   - resolved slot: the callback runs immediately with the cached object
//
// The effective configuration is, from lowest to highest precedence: files
// found walking up from the directory (farthest first), or the personal
// configuration in the home directory when none were found; the override
// file; the explicit settings, plugins and output from Options.
//
// A discovery failure is delivered to every queued callback and the slot is
// dropped, so the next request for that directory walks again.
package resolver
