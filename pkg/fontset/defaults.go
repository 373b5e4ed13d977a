package fontset

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fontwell/fontwell/pkg/errors"
)

// DefaultFamily is the bundled fallback family. Requests naming it skip
// the remote stage and resolve straight from the fonts root.
const DefaultFamily = "Go"

// defaultFiles maps each role to its bundled asset filename inside the
// fonts root. The Go face family has no light cut, so light duplicates
// the regular data; the filenames stay distinct so the on-disk layout
// matches the <Family>-<Weight>.ttf convention.
var defaultFiles = map[Role]string{
	RoleLight:   DefaultFamily + "-Light.ttf",
	RoleRegular: DefaultFamily + "-Regular.ttf",
	RoleBold:    DefaultFamily + "-Bold.ttf",
}

// defaultData holds the embedded font bytes written by Materialize.
var defaultData = map[Role][]byte{
	RoleLight:   goregular.TTF,
	RoleRegular: goregular.TTF,
	RoleBold:    gobold.TTF,
}

// DefaultSet returns the bundled default font set from the fonts root.
// All three files must exist; a missing file fails the whole set rather
// than returning a partial result.
func DefaultSet(fontsDir string) (*Set, error) {
	b := NewBuilder()
	for _, role := range scanOrder {
		path := filepath.Join(fontsDir, defaultFiles[role])
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New(errors.ErrCodeDefaultAssetMissing, "default font not found: %s", path)
		}
		b.Assign(role, path)
	}
	return b.Set()
}

// Materialize writes the embedded default fonts into the fonts root,
// creating it if necessary. Existing files are left untouched, so the
// call is cheap and idempotent.
func Materialize(fontsDir string) error {
	if err := os.MkdirAll(fontsDir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot create fonts directory %s", fontsDir)
	}
	for _, role := range scanOrder {
		path := filepath.Join(fontsDir, defaultFiles[role])
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, defaultData[role], 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "cannot write default font %s", path)
		}
	}
	return nil
}
