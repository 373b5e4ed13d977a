package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/googlefonts"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendMongo = "mongo"
	CacheBackendNone  = "none"
)

// Config holds user configuration loaded from the TOML config file.
// All fields are optional; zero values fall back to built-in defaults.
type Config struct {
	// FontsDir overrides the fonts root directory.
	FontsDir string `toml:"fonts_dir"`

	// DefaultFamily is tried when resolve is called without --family.
	DefaultFamily string `toml:"default_family"`

	// CacheBackend selects the stylesheet cache: file, redis, mongo, none.
	CacheBackend string `toml:"cache_backend"`

	// StylesheetTTL controls how long cached stylesheets stay fresh.
	StylesheetTTL duration `toml:"stylesheet_ttl"`

	// Timeout bounds a full resolve operation end to end.
	Timeout duration `toml:"timeout"`

	Redis RedisSettings `toml:"redis"`
	Mongo MongoSettings `toml:"mongo"`
	Serve ServeSettings `toml:"serve"`
}

// RedisSettings configures the redis stylesheet cache backend.
type RedisSettings struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoSettings configures the mongodb stylesheet cache backend.
type MongoSettings struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeSettings configures the HTTP server command.
type ServeSettings struct {
	Addr string `toml:"addr"`
}

// duration wraps time.Duration so TOML values can be written as "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		CacheBackend:  CacheBackendFile,
		StylesheetTTL: duration{googlefonts.DefaultStylesheetTTL},
		Timeout:       duration{time.Minute},
		Redis:         RedisSettings{Addr: "localhost:6379"},
		Mongo: MongoSettings{
			URI:        "mongodb://localhost:27017",
			Database:   appName,
			Collection: "stylesheets",
		},
		Serve: ServeSettings{Addr: ":8080"},
	}
}

// DefaultConfigPath returns the XDG config file location
// (~/.config/fontwell/config.toml).
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(appName, "config.toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads the TOML config at path, layering it over the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to parse config file")
	}
	switch cfg.CacheBackend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendMongo, CacheBackendNone:
	default:
		return nil, errors.New(errors.ErrCodeParse, "unknown cache_backend: %s", cfg.CacheBackend)
	}
	return cfg, nil
}
