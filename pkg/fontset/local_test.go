package fontset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fontwell/fontwell/pkg/errors"
)

// writeFont creates an empty placeholder font file in dir.
func writeFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolveLocal_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFont(t, dir, "MyFont.ttf")

	set, err := ResolveLocal(path)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Light != path || set.Regular != path || set.Bold != path {
		t.Errorf("single file should serve all roles, got %+v", set)
	}
}

func TestResolveLocal_SingleFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFont(t, dir, "notes.txt")

	_, err := ResolveLocal(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedExt) {
		t.Errorf("expected UNSUPPORTED_FORMAT, got %v", errors.GetCode(err))
	}
}

func TestResolveLocal_PathNotFound(t *testing.T) {
	_, err := ResolveLocal(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !errors.Is(err, errors.ErrCodePathNotFound) {
		t.Errorf("expected PATH_NOT_FOUND, got %v", errors.GetCode(err))
	}
}

func TestResolveLocal_DirectoryFullTrio(t *testing.T) {
	dir := t.TempDir()
	light := writeFont(t, dir, "MyFont-Light.ttf")
	regular := writeFont(t, dir, "MyFont-Regular.ttf")
	bold := writeFont(t, dir, "MyFont-Bold.ttf")

	set, err := ResolveLocal(dir)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Light != light {
		t.Errorf("Light = %s, want %s", set.Light, light)
	}
	if set.Regular != regular {
		t.Errorf("Regular = %s, want %s", set.Regular, regular)
	}
	if set.Bold != bold {
		t.Errorf("Bold = %s, want %s", set.Bold, bold)
	}
}

func TestResolveLocal_DirectoryPartialMatch(t *testing.T) {
	dir := t.TempDir()
	bold := writeFont(t, dir, "bold.ttf")
	thin := writeFont(t, dir, "thin.ttf")

	set, err := ResolveLocal(dir)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Bold != bold {
		t.Errorf("Bold = %s, want %s", set.Bold, bold)
	}
	if set.Light != thin {
		t.Errorf("Light = %s, want %s", set.Light, thin)
	}
	// No regular pattern matched; it falls back to the first file in
	// lexical order.
	if set.Regular != bold {
		t.Errorf("Regular = %s, want first enumerated candidate %s", set.Regular, bold)
	}
}

func TestResolveLocal_DirectoryNoPatternMatch(t *testing.T) {
	dir := t.TempDir()
	first := writeFont(t, dir, "aaa.ttf")
	writeFont(t, dir, "zzz.otf")

	set, err := ResolveLocal(dir)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Light != first || set.Regular != first || set.Bold != first {
		t.Errorf("all roles should fall back to the first candidate, got %+v", set)
	}
}

func TestResolveLocal_DirectoryAmbiguousStem(t *testing.T) {
	// bold_400 matches both bold and regular patterns; bold is scanned
	// first and claims it, and the file stays available for regular.
	dir := t.TempDir()
	path := writeFont(t, dir, "bold_400.ttf")

	set, err := ResolveLocal(dir)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Bold != path || set.Regular != path || set.Light != path {
		t.Errorf("single ambiguous file should serve all roles, got %+v", set)
	}
}

func TestResolveLocal_DirectoryIgnoresNonFonts(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "README.md")
	writeFont(t, dir, "license.txt")
	font := writeFont(t, dir, "somefont.woff2")

	set, err := ResolveLocal(dir)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	if set.Regular != font {
		t.Errorf("Regular = %s, want %s", set.Regular, font)
	}
}

func TestResolveLocal_EmptyDirectory(t *testing.T) {
	_, err := ResolveLocal(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory without fonts")
	}
	if !errors.Is(err, errors.ErrCodeNoCandidates) {
		t.Errorf("expected NO_CANDIDATES_FOUND, got %v", errors.GetCode(err))
	}
}

func TestResolveLocal_SymlinkedDirectory(t *testing.T) {
	real := t.TempDir()
	font := writeFont(t, real, "MyFont-Regular.ttf")

	link := filepath.Join(t.TempDir(), "fonts")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	set, err := ResolveLocal(link)
	if err != nil {
		t.Fatalf("ResolveLocal failed: %v", err)
	}
	// Paths are reported under the resolved target, not the symlink.
	resolved, _ := filepath.EvalSymlinks(font)
	if set.Regular != resolved {
		t.Errorf("Regular = %s, want resolved path %s", set.Regular, resolved)
	}
}
