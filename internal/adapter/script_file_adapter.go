package adapter

import (
	"fmt"

	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/parser"
	"lexmod.dev/pkg/lexmod/internal/printer"
	"lexmod.dev/pkg/lexmod/internal/scope"
)

// ScriptFileAdapter encapsulates script-specific parsing, scope construction
// and printing so the domain layer can focus on resolution rules while
// delegating syntax details to an infrastructure component.
type ScriptFileAdapter interface {
	// Parse builds a syntax tree from the source bytes of filename.
	Parse(filename string, src []byte) (*ast.Program, error)

	// BuildScopes constructs the lexical scope tree for a parsed program.
	// It is called afresh before every transform pass; nothing is reused
	// across structural edits.
	BuildScopes(prog *ast.Program) *scope.Tree

	// Print renders the (possibly mutated) syntax tree back to source text.
	Print(prog *ast.Program) []byte
}

// LocalScriptFileAdapter provides a concrete ScriptFileAdapter backed by the
// internal parser and printer.
type LocalScriptFileAdapter struct{}

// NewLocalScriptFileAdapter constructs a LocalScriptFileAdapter.
func NewLocalScriptFileAdapter() *LocalScriptFileAdapter {
	return &LocalScriptFileAdapter{}
}

// Parse builds a syntax tree for the provided filename/source pair.
func (a *LocalScriptFileAdapter) Parse(filename string, src []byte) (*ast.Program, error) {
	prog, err := parser.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return prog, nil
}

// BuildScopes constructs the scope tree for prog.
func (a *LocalScriptFileAdapter) BuildScopes(prog *ast.Program) *scope.Tree {
	return scope.Build(prog)
}

// Print renders prog as deterministic source text.
func (a *LocalScriptFileAdapter) Print(prog *ast.Program) []byte {
	return printer.Print(prog)
}
