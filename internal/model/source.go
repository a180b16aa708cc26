// Package model defines the data structures shared across the lexmod pipeline.
package model

// Path represents a file system path.
type Path string

// File represents a source code file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a script file loaded for transformation: its origin on disk plus
// the raw bytes the parser consumes.
type Source struct {
	Origin *File
	Code   []byte
}
