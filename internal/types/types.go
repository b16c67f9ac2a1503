// Package types defines the cross‑package data structures used by struktur.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// Entry is a single filesystem node discovered while enumerating a directory.
type Entry struct {
	Name string
	Kind string
}

// IsDirectory reports whether the entry refers to a directory.
func (entry Entry) IsDirectory() bool {
	return entry.Kind == NodeTypeDirectory
}
