package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/parkops/lotmap/pkg/cache"
	"github.com/parkops/lotmap/pkg/source"
	"github.com/parkops/lotmap/pkg/source/csvfile"
	mongosource "github.com/parkops/lotmap/pkg/source/mongo"
	"github.com/parkops/lotmap/pkg/source/tomlfile"
)

// Config is the TOML configuration file for the tool. Every field has a
// working default, so no config file is required for CSV-based use.
type Config struct {
	Source SourceConfig `toml:"source"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// SourceConfig selects where permit rows come from.
type SourceConfig struct {
	Kind  string      `toml:"kind"` // csv, toml or mongo
	Path  string      `toml:"path"` // file path for csv/toml
	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig configures the MongoDB row source.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig selects the render artifact cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file, redis or none
	Dir     string      `toml:"dir"`     // file backend directory (default ~/.cache/lotmap)
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig configures the HTTP frontend.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Source: SourceConfig{Kind: "csv", Path: "permits.csv"},
		Cache:  CacheConfig{Backend: "file"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads the TOML config at path. An empty path falls back to
// the default location; a missing file there is not an error, the defaults
// apply. An explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location
// (~/.config/lotmap/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// newSource constructs the configured row source. The --file flag (when
// set on a command) overrides the configured path for file-based kinds.
func newSource(cfg Config, fileOverride string) (source.Source, error) {
	path := cfg.Source.Path
	if fileOverride != "" {
		path = fileOverride
	}
	switch cfg.Source.Kind {
	case "csv":
		return csvfile.New(path), nil
	case "toml":
		return tomlfile.New(path), nil
	case "mongo":
		m := cfg.Source.Mongo
		return mongosource.New(m.URI, m.Database, m.Collection), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q (want csv, toml or mongo)", cfg.Source.Kind)
	}
}

// newCache constructs the configured artifact cache. Any failure to set up
// a real backend degrades to the null cache; caching is an optimization,
// never a reason to fail a render.
func newCache(ctx context.Context, cfg Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache()
	}
	switch cfg.Cache.Backend {
	case "redis":
		r := cfg.Cache.Redis
		c, err := cache.NewRedisCache(ctx, r.Addr, r.Password, r.DB)
		if err != nil {
			loggerFromContext(ctx).Warnf("Redis cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache()
		}
		return c
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache()
			}
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			loggerFromContext(ctx).Warnf("File cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache()
		}
		return c
	}
}

// cacheDir returns the XDG cache directory (~/.cache/lotmap).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPathKey carries the --config flag value through the context.
const configPathKey ctxKey = 1

func withConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// configFromContext loads the config named by the --config flag.
func configFromContext(ctx context.Context) (Config, error) {
	path, _ := ctx.Value(configPathKey).(string)
	return loadConfig(path)
}
