package fontset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fontwell/fontwell/pkg/errors"
)

// ResolveLocal builds a font set from a local file or directory.
//
// A single file must carry a supported extension and is used for all
// three roles. A directory is scanned for font files among its direct
// children; filenames are bucketed into roles by [ClassifyStem], and any
// role left unmatched falls back to the first candidate in enumeration
// order. Enumeration order is the lexical order of os.ReadDir, so results
// are deterministic for a given directory.
func ResolveLocal(path string) (*Set, error) {
	abs, err := normalizePath(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot resolve path %s", path)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodePathNotFound, "font path does not exist: %s", abs)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot stat %s", abs)
	}

	switch {
	case info.Mode().IsRegular():
		return resolveFile(abs)
	case info.IsDir():
		return resolveDir(abs)
	default:
		return nil, errors.New(errors.ErrCodeInvalidPath, "not a file or directory: %s", abs)
	}
}

// normalizePath expands a leading ~, makes the path absolute, and resolves
// symlinks when the target exists.
func normalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}

// resolveFile handles the single-file case: one asset serves every weight.
func resolveFile(path string) (*Set, error) {
	if !supportedExt(path) {
		return nil, errors.New(errors.ErrCodeUnsupportedExt,
			"unsupported font format %s (supported: ttf, otf, woff, woff2)", filepath.Ext(path))
	}
	return &Set{Light: path, Regular: path, Bold: path}, nil
}

// resolveDir classifies the font files directly inside dir into roles.
func resolveDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read directory %s", dir)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || !supportedExt(entry.Name()) {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, entry.Name()))
	}
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeNoCandidates, "no font files found in %s", dir)
	}

	b := NewBuilder()
	for _, role := range scanOrder {
		for _, candidate := range candidates {
			if MatchesRole(stem(candidate), role) {
				b.Assign(role, candidate)
				break
			}
		}
	}

	// A candidate claimed by one role stays in the pool for the others;
	// roles nothing matched fall back to the first enumerated file.
	first := candidates[0]
	if b.Empty() {
		return &Set{Light: first, Regular: first, Bold: first}, nil
	}
	for _, role := range scanOrder {
		if !b.Has(role) {
			b.Assign(role, first)
		}
	}
	return b.Set()
}

// stem returns the lowercased filename without directory or extension.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
}

// supportedExt reports whether the path carries a supported font extension.
func supportedExt(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return SupportedExts[ext]
}
