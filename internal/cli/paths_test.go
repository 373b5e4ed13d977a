package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testCLI(t *testing.T) *CLI {
	t.Helper()
	return &CLI{
		Logger: newLogger(io.Discard, log.InfoLevel),
		Config: DefaultConfig(),
	}
}

func TestFontsDirConfigOverride(t *testing.T) {
	c := testCLI(t)
	c.Config.FontsDir = "/srv/fonts"

	if got := c.fontsDir(); got != "/srv/fonts" {
		t.Errorf("fontsDir() = %q, want config override", got)
	}
}

func TestFontsDirXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/custom-data")

	c := testCLI(t)
	expected := filepath.Join("/tmp/custom-data", appName, "fonts")
	if got := c.fontsDir(); got != expected {
		t.Errorf("fontsDir() = %q, want %q", got, expected)
	}
}

func TestFontsDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	os.Unsetenv("XDG_DATA_HOME")

	c := testCLI(t)
	dir := c.fontsDir()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	expected := filepath.Join(home, ".local", "share", appName, "fonts")
	if dir != expected {
		t.Errorf("fontsDir() = %q, want %q", dir, expected)
	}
}

func TestAssetCacheDir(t *testing.T) {
	c := testCLI(t)
	c.Config.FontsDir = "/srv/fonts"

	if got := c.assetCacheDir(); got != filepath.Join("/srv/fonts", "cache") {
		t.Errorf("assetCacheDir() = %q, want cache inside fonts root", got)
	}
}

func TestStylesheetCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	expected := filepath.Join("/tmp/custom-cache", appName)
	if got := stylesheetCacheDir(); got != expected {
		t.Errorf("stylesheetCacheDir() = %q, want %q", got, expected)
	}
}

func TestStylesheetCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	os.Unsetenv("XDG_CACHE_HOME")

	dir := stylesheetCacheDir()
	if dir == "" {
		t.Fatal("stylesheetCacheDir() returned empty string")
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("stylesheetCacheDir() = %q, should end with %q", dir, appName)
	}
}
