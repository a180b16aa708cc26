package domain

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/engine"
	m "lexmod.dev/pkg/lexmod/internal/model"
	"lexmod.dev/pkg/lexmod/internal/query"
)

// Survey lists every plain-identifier declarator with its reference count,
// without mutating anything.
func (w *workflow) Survey(ctx context.Context, args SurveyArgs) error {
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

	var (
		mu    sync.Mutex
		stats []m.DeclaratorStat
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, source := range sources {
		source := source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			fileStats, err := w.surveyFile(source)
			if err != nil {
				return err
			}

			mu.Lock()
			stats = append(stats, fileStats...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return w.DisplaySurvey(ctx, stats)
}

func (w *workflow) surveyFile(source m.Source) ([]m.DeclaratorStat, error) {
	prog, err := w.Parse(string(source.Origin.FullPath), source.Code)
	if err != nil {
		return nil, err
	}

	tree := w.BuildScopes(prog)
	root := query.NewRoot(prog, tree)
	decls := query.FindDeclarators(tree, root)

	var stats []m.DeclaratorStat

	for _, declPath := range decls.Paths() {
		name := engine.DeclaredName(declPath)
		if name == "" {
			// Destructuring declarators are not reference-counted.
			continue
		}

		matcher, err := engine.NewMatcher(declPath)
		if err != nil {
			return nil, fmt.Errorf("survey %s: %w", source.Origin.ShortPath, err)
		}

		refs, err := engine.CountReferences(decls, declPath)
		if err != nil {
			return nil, fmt.Errorf("survey %s: %w", source.Origin.ShortPath, err)
		}

		ident := declPath.Node.(*ast.VariableDeclarator).ID.(*ast.Identifier)

		stats = append(stats, m.DeclaratorStat{
			File:       source.Origin.ShortPath,
			Name:       name,
			Line:       ident.Pos.Line,
			Column:     ident.Pos.Column,
			ScopeKind:  matcher.DeclScope.Kind().String(),
			References: refs,
			Dead:       refs == 0,
		})
	}

	return stats, nil
}
