package model

// TransformKind names the transformation that produced a Change.
type TransformKind string

const (
	// TransformRename is a scope-correct variable rename.
	TransformRename TransformKind = "rename"
	// TransformPrune is the removal of unreferenced variable declarators.
	TransformPrune TransformKind = "prune"
)

// Change records the outcome of transforming a single source file.
type Change struct {
	Source   Source
	Kind     TransformKind
	Before   []byte
	After    []byte
	Edits    int    // identifiers rewritten or declarators removed
	Diff     string // unified diff of Before vs After, empty when Edits == 0
	Written  bool   // true when After was persisted to Source.Origin
	RenamedF string // old name of a rename, empty for other kinds
	RenamedT string // new name of a rename, empty for other kinds
}

// Changed reports whether the transformation touched the file at all.
func (c Change) Changed() bool {
	return c.Edits > 0
}

// DeclaratorStat is one row of the survey (`lexmod list`) output: a variable
// declarator and how many identifiers resolve to it.
type DeclaratorStat struct {
	File       Path
	Name       string
	Line       int
	Column     int
	ScopeKind  string // "program" or "function"
	References int
	Dead       bool // no references outside the binding occurrence
}
