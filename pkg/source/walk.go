package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Expand resolves each search path into the files to scan, in order.
// A file path yields itself. A directory yields the regular files directly
// inside it, or with recursive set every regular file below it, in lexical
// order. Paths that cannot be resolved yield a Target carrying the error so
// the caller can report it in sequence and go on.
func Expand(ctx context.Context, paths []string, recursive bool) ([]Target, error) {
	var targets []Target
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		targets = append(targets, expandPath(path, recursive)...)
	}
	return targets, nil
}

func expandPath(root string, recursive bool) []Target {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Target{{Path: root, Err: &PathError{Path: root, Err: ErrPathNotFound}}}
		}
		return []Target{{Path: root, Err: &PathError{Path: root, Err: err}}}
	}

	if !info.IsDir() {
		return []Target{{Path: root}}
	}

	// WalkDir does not follow a symlinked root, so walk the resolved
	// directory and label every result under the path the caller gave.
	walkRoot := root
	if lst, err := os.Lstat(root); err == nil && lst.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			return []Target{{Path: root, Err: &PathError{Path: root, Err: err}}}
		}
		walkRoot = resolved
	}
	label := func(path string) string {
		if walkRoot == root {
			return path
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return path
		}
		return filepath.Join(root, rel)
	}

	var targets []Target
	// WalkDir only returns the callback's own errors; every error is turned
	// into a Target below so the walk always completes.
	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			name := label(path)
			targets = append(targets, Target{Path: name, Err: &ReadError{Path: name, Err: err}})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != walkRoot && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if isRegular(path, d) {
			targets = append(targets, Target{Path: label(path)})
		}
		return nil
	})

	return targets
}

// isRegular reports whether the entry is a regular file or a symlink to one.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
