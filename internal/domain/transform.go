package domain

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/engine"
	m "lexmod.dev/pkg/lexmod/internal/model"
	"lexmod.dev/pkg/lexmod/internal/query"
)

// Rename runs the scope-correct rename over every collected file.
func (w *workflow) Rename(ctx context.Context, args RenameArgs) error {
	if args.OldName == args.NewName {
		return fmt.Errorf("old and new name are both %q", args.OldName)
	}

	return w.transform(ctx, args.CommonArgs, m.TransformRename, func(source m.Source) (m.Change, error) {
		return w.renameFile(source, args)
	})
}

// Prune removes unreferenced declarators from every collected file.
func (w *workflow) Prune(ctx context.Context, args PruneArgs) error {
	return w.transform(ctx, args.CommonArgs, m.TransformPrune, w.pruneFile)
}

// transform fans the per-file function out over the collected sources,
// bounded by the worker count, then reports per-file changes in input order
// and the run summary.
func (w *workflow) transform(ctx context.Context, args CommonArgs, kind m.TransformKind, perFile func(m.Source) (m.Change, error)) error {
	if err := w.validate(); err != nil {
		return err
	}

	sources, err := w.collectSources(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	changes := make([]m.Change, len(sources))

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			change, err := perFile(source)
			if err != nil {
				return err
			}

			change.Kind = kind

			if change.Changed() && args.Write {
				if err := w.writeChange(&change); err != nil {
					return err
				}
			}

			mu.Lock()
			changes[i] = change
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("transform failed", "kind", kind, "error", err)
		return err
	}

	for _, change := range changes {
		w.DisplayChange(ctx, change)
	}

	w.DisplaySummary(ctx, changes)

	if args.Reports != "" && w.ReportStore != nil {
		if err := w.Save(args.Reports, changes); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return nil
}

// renameFile renames every declarator bound to args.OldName, one declarator
// at a time. After each rename the scope tree and declarator lookup are
// recomputed from the mutated tree, so a pass never acts on stale paths; each
// iteration retires one declarator, which bounds the loop.
func (w *workflow) renameFile(source m.Source, args RenameArgs) (m.Change, error) {
	prog, err := w.Parse(string(source.Origin.FullPath), source.Code)
	if err != nil {
		return m.Change{}, err
	}

	edits := 0

	for {
		tree := w.BuildScopes(prog)
		root := query.NewRoot(prog, tree)

		decls := query.FindDeclarators(tree, root).Filter(func(p *query.Path) bool {
			return engine.DeclaredName(p) == args.OldName
		})
		if args.RequireModule != "" {
			decls = decls.Filter(engine.RequiresModule(args.RequireModule))
		}

		if decls.Size() == 0 {
			break
		}

		n, err := engine.Rename(tree, decls.Paths()[0], args.NewName)
		if err != nil {
			return m.Change{}, fmt.Errorf("rename %s in %s: %w", args.OldName, source.Origin.ShortPath, err)
		}

		edits += n
	}

	return w.finishChange(source, prog, edits, args.OldName, args.NewName)
}

// pruneFile removes unreferenced declarators in one pass.
func (w *workflow) pruneFile(source m.Source) (m.Change, error) {
	prog, err := w.Parse(string(source.Origin.FullPath), source.Code)
	if err != nil {
		return m.Change{}, err
	}

	tree := w.BuildScopes(prog)
	root := query.NewRoot(prog, tree)
	decls := query.FindDeclarators(tree, root)

	survivors, err := engine.RemoveUnreferenced(decls)
	if err != nil {
		return m.Change{}, fmt.Errorf("prune %s: %w", source.Origin.ShortPath, err)
	}

	return w.finishChange(source, prog, decls.Size()-survivors.Size(), "", "")
}

// finishChange prints the (possibly mutated) tree and computes the dry-run
// diff. Untouched files keep their original bytes; only changed files are
// re-rendered by the printer.
func (w *workflow) finishChange(source m.Source, prog *ast.Program, edits int, renamedFrom, renamedTo string) (m.Change, error) {
	change := m.Change{
		Source:   source,
		Before:   source.Code,
		After:    source.Code,
		Edits:    edits,
		RenamedF: renamedFrom,
		RenamedT: renamedTo,
	}

	if edits == 0 {
		return change, nil
	}

	change.After = w.Print(prog)

	if !bytes.Equal(change.Before, change.After) {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(change.Before)),
			B:        difflib.SplitLines(string(change.After)),
			FromFile: string(source.Origin.ShortPath),
			ToFile:   string(source.Origin.ShortPath),
			Context:  3,
		})
		if err != nil {
			return m.Change{}, err
		}

		change.Diff = diff
	}

	return change, nil
}

func (w *workflow) writeChange(change *m.Change) error {
	perm := fs.FileMode(0o600)
	if info, err := w.FileInfo(change.Source.Origin.FullPath); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.WriteFile(change.Source.Origin.FullPath, change.After, perm); err != nil {
		return fmt.Errorf("write %s: %w", change.Source.Origin.ShortPath, err)
	}

	change.Written = true

	slog.Debug("rewrote file", "path", change.Source.Origin.ShortPath, "edits", change.Edits)

	return nil
}
