package filesystem

import "io/fs"

// FS is the subset of filesystem operations cascade needs. Nothing in
// cascade writes through it.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
