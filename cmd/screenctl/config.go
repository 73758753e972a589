package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

type playerConfig struct {
	// Stream is the path of the binary display stream to play. Empty means
	// the built-in demo.
	Stream string
}

type fileConfig struct {
	Stream string `toml:"stream"`
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{}
}

// loadPlayerConfig loads path, or the per-user default location when path is
// empty. A missing default config is not an error; a missing explicit path is.
func loadPlayerConfig(path string) (playerConfig, error) {
	cfg := defaultPlayerConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(xdg.ConfigHome, "screenctl", "config.toml")
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return playerConfig{}, fmt.Errorf("load player config: %w", err)
	}

	if meta.IsDefined("stream") {
		cfg.Stream = strings.TrimSpace(raw.Stream)
	}

	return cfg, nil
}
