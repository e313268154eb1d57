package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roguegrid/internal/server"
	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
)

// Config is the layout of the config file.
//
//	[generator]
//	grid_size = 4
//	corridors = "uniform"
//
//	[render]
//	style = "compact"
//	color = false
//
//	[server]
//	addr = ":9000"
//	cache_entries = 512
type Config struct {
	Generator dungeon.Config `toml:"generator"`
	Render    RenderConfig   `toml:"render"`
	Server    server.Config  `toml:"server"`
}

// RenderConfig holds terminal output preferences.
type RenderConfig struct {
	Style string `toml:"style"`
	Color bool   `toml:"color"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Generator: dungeon.DefaultConfig(),
		Render:    RenderConfig{Style: pipeline.DefaultStyle, Color: true},
		Server:    server.Config{Addr: server.DefaultAddr},
	}
}

// configDir returns the config directory using XDG standard (~/.config/roguegrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// cacheDir returns the artifact cache directory (~/.cache/roguegrid/artifacts/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName, "artifacts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName, "artifacts"), nil
}

// loadConfig reads the config file on top of the defaults. A missing file
// is only an error when it was named with --config.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFileName)
	}

	cfg, err := readConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, errors.ErrCodeNotFound) {
			return nil
		}
		return err
	}
	c.config = cfg.config
	for _, key := range cfg.undecoded {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	c.Logger.Debug("loaded config", "file", path)
	return nil
}

type loadedConfig struct {
	config    Config
	undecoded []string
}

func readConfig(path string) (loadedConfig, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return loadedConfig{}, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return loadedConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Generator.Validate(); err != nil {
		return loadedConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if err := pipeline.ValidateStyle(cfg.Render.Style); err != nil {
		return loadedConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return loadedConfig{config: cfg, undecoded: undecoded}, nil
}
