package fontset

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fontwell/fontwell/pkg/errors"
)

// RemoteFetcher downloads a named font family and returns a complete set,
// typically backed by the googlefonts package.
type RemoteFetcher interface {
	Fetch(ctx context.Context, family string, weights []int) (*Set, error)
}

// Resolver resolves font sets through the fixed priority chain:
// remote family, then local path, then the bundled default.
//
// Each stage either yields a complete Set or fails as a whole; stages are
// never combined and a stage failure simply moves the chain along. Only
// when every stage is exhausted does Resolve return an error.
type Resolver struct {
	// Fetcher handles the remote family stage. A nil Fetcher skips it.
	Fetcher RemoteFetcher

	// FontsDir is the root directory holding the bundled default fonts.
	FontsDir string

	// Logger receives per-stage diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Resolve runs the priority chain for the given inputs. Empty family and
// path skip their stages. A family naming the bundled default also skips
// the remote stage, since the default is already on disk.
func (r *Resolver) Resolve(ctx context.Context, family, path string) (*Set, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	if family != "" && !strings.EqualFold(family, DefaultFamily) && r.Fetcher != nil {
		logger.Info("Resolving web font family", "family", family)
		set, err := r.Fetcher.Fetch(ctx, family, DefaultWeights())
		if err == nil {
			return set, nil
		}
		logger.Warn("Web font resolution failed, trying next source",
			"family", family, "err", errors.UserMessage(err))
	}

	if path != "" {
		set, err := ResolveLocal(path)
		if err == nil {
			logger.Info("Resolved fonts from local path", "path", path)
			return set, nil
		}
		logger.Warn("Local font resolution failed, falling back to defaults",
			"path", path, "err", errors.UserMessage(err))
	}

	set, err := DefaultSet(r.FontsDir)
	if err != nil {
		logger.Error("Default font set unavailable", "dir", r.FontsDir, "err", errors.UserMessage(err))
		return nil, err
	}
	return set, nil
}

// Load is a convenience wrapper for the common case: resolve with the
// given fetcher and fonts root using the default weights. Either family
// or path may be empty.
func Load(ctx context.Context, fetcher RemoteFetcher, fontsDir, family, path string) (*Set, error) {
	r := &Resolver{Fetcher: fetcher, FontsDir: fontsDir}
	return r.Resolve(ctx, family, path)
}
