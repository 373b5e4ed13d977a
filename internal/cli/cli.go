// Package cli implements the fontwell command-line interface.
//
// This package provides commands for resolving font sets from Google
// Fonts, local paths, or the bundled defaults, for managing the on-disk
// font caches, and for serving the resolver over HTTP. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - resolve: Run the full resolution chain and print the font set
//   - fetch: Prefetch a Google Fonts family into the asset cache
//   - find: Locate installed system fonts by name
//   - init: Materialize the bundled default fonts
//   - cache: Manage the asset and stylesheet caches
//   - serve: Expose the resolver over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/pkg/buildinfo"
	"github.com/fontwell/fontwell/pkg/cache"
	"github.com/fontwell/fontwell/pkg/fontset"
	"github.com/fontwell/fontwell/pkg/googlefonts"
)

// appName is the application name used for directories and display.
const appName = "fontwell"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the config
// loaded from the default location (missing config files are fine and
// fall back to defaults).
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig(DefaultConfigPath())
	logger := newLogger(w, level)
	if err != nil {
		logger.Warn("Ignoring unreadable config file", "path", DefaultConfigPath(), "err", err)
		cfg = DefaultConfig()
	}
	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fontwell resolves light/regular/bold font sets for rendering tools",
		Long:         `Fontwell resolves a three-weight font set (light, regular, bold) from Google Fonts, a local file or directory, or the bundled defaults, caching downloaded assets locally.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.findCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Fetcher Factory
// =============================================================================

// newFetcher builds a Google Fonts client using the configured stylesheet
// cache backend. noCache disables stylesheet caching entirely; refresh
// keeps the backend but bypasses reads.
func (c *CLI) newFetcher(ctx context.Context, noCache, refresh bool) (*googlefonts.Client, error) {
	backend, err := c.newStylesheetCache(ctx, noCache)
	if err != nil {
		c.Logger.Warn("Stylesheet cache unavailable, continuing without", "err", err)
		backend = cache.NewNullCache()
	}
	client := googlefonts.NewClient(c.assetCacheDir(), backend, c.Config.StylesheetTTL.Duration, c.Logger)
	client.Refresh = refresh
	return client, nil
}

// newResolver builds the full priority-chain resolver.
func (c *CLI) newResolver(ctx context.Context, noCache, refresh bool) (*fontset.Resolver, error) {
	fetcher, err := c.newFetcher(ctx, noCache, refresh)
	if err != nil {
		return nil, err
	}
	return &fontset.Resolver{
		Fetcher:  fetcher,
		FontsDir: c.fontsDir(),
		Logger:   c.Logger,
	}, nil
}

// newStylesheetCache selects the cache backend from config.
func (c *CLI) newStylesheetCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.CacheBackend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
			Prefix:   appName + ":",
		})
	case CacheBackendMongo:
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Config.Mongo.URI,
			Database:   c.Config.Mongo.Database,
			Collection: c.Config.Mongo.Collection,
		})
	default:
		return cache.NewFileCache(stylesheetCacheDir())
	}
}

// =============================================================================
// Paths
// =============================================================================

// fontsDir returns the fonts root. Config wins; otherwise the XDG data
// directory (~/.local/share/fontwell/fonts) is used, falling back to a
// relative "fonts" directory when no home is available.
func (c *CLI) fontsDir() string {
	if c.Config.FontsDir != "" {
		return c.Config.FontsDir
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "fonts")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fonts"
	}
	return filepath.Join(home, ".local", "share", appName, "fonts")
}

// assetCacheDir returns the font asset cache directory inside the fonts root.
func (c *CLI) assetCacheDir() string {
	return filepath.Join(c.fontsDir(), "cache")
}

// stylesheetCacheDir returns the stylesheet cache directory using the XDG
// standard (~/.cache/fontwell/).
func stylesheetCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}

// =============================================================================
// Helpers
// =============================================================================

// withTimeout bounds an operation with the configured overall timeout.
func (c *CLI) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.Config.Timeout.Duration
	if timeout <= 0 {
		timeout = time.Minute
	}
	return context.WithTimeout(ctx, timeout)
}
