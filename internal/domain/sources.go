package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

const scriptExt = ".js"

// collectSources expands paths into the list of script files to process.
// A path may be a single file, a directory (scanned non-recursively), or a
// directory suffixed with /... (scanned recursively), mirroring Go path
// patterns. Exclude patterns are regular expressions matched against the
// file's short path.
func (w *workflow) collectSources(paths []m.Path, exclude []string) ([]m.Source, error) {
	if len(paths) == 0 {
		paths = []m.Path{m.Path("." + string(filepath.Separator) + "...")}
	}

	filters, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var sources []m.Source

	seen := make(map[m.Path]struct{})

	for _, path := range paths {
		root, recursive := splitPattern(path)

		info, err := w.FileInfo(root)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", root, err)
		}

		if !info.IsDir() {
			if err := w.appendSource(&sources, seen, root, filters); err != nil {
				return nil, err
			}

			continue
		}

		err = w.Walk(root, recursive, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || filepath.Ext(p) != scriptExt {
				return nil
			}

			return w.appendSource(&sources, seen, m.Path(p), filters)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func (w *workflow) appendSource(sources *[]m.Source, seen map[m.Path]struct{}, path m.Path, filters []*regexp.Regexp) error {
	short := w.shortPath(path)

	for _, filter := range filters {
		if filter.MatchString(string(short)) {
			return nil
		}
	}

	if _, ok := seen[path]; ok {
		return nil
	}

	seen[path] = struct{}{}

	code, err := w.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	hash, err := w.HashFile(path)
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}

	*sources = append(*sources, m.Source{
		Origin: &m.File{FullPath: path, ShortPath: short, Hash: hash},
		Code:   code,
	})

	return nil
}

func splitPattern(path m.Path) (m.Path, bool) {
	s := string(path)
	if strings.HasSuffix(s, "...") {
		trimmed := strings.TrimSuffix(s, "...")

		trimmed = strings.TrimSuffix(trimmed, string(filepath.Separator))
		if trimmed == "" {
			trimmed = "."
		}

		return m.Path(trimmed), true
	}

	return path, false
}

// shortPath relativizes path against the working directory for display and
// exclude matching; paths outside the working tree are kept as given.
func (w *workflow) shortPath(path m.Path) m.Path {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := w.RelPath(m.Path(wd), path)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		return path
	}

	return rel
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}
