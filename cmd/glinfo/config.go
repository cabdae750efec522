package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// config holds the tool settings. Flags override values from the file.
type config struct {
	Loaders     []string `toml:"loaders"`
	GLES        bool     `toml:"gles"`
	GLVersion   string   `toml:"gl_version"`
	MissingOnly bool     `toml:"missing_only"`
	Format      string   `toml:"format"`
}

const configFile = "config.toml"

func defaultConfig() config {
	return config{
		Loaders:   nil, // every registered loader, in priority order
		GLES:      false,
		GLVersion: "3.3",
		Format:    formatTable,
	}
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "glinfo")
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), configFile)
}

func xdgOrFallback(xdg, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
	}
	return fallback
}

// loadConfig reads path over the defaults. A missing file at the default
// location is not an error; an explicitly named one is.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	switch c.Format {
	case formatTable, formatPlain, formatTOML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, formatTable, formatPlain, formatTOML)
}

// applyFlags overrides file values with the flags the user set.
func (c *config) applyFlags(ctx *cli.Context) error {
	if ctx.IsSet(loaderFlag.Name) {
		c.Loaders = ctx.StringSlice(loaderFlag.Name)
	}
	if ctx.IsSet(glesFlag.Name) {
		c.GLES = ctx.Bool(glesFlag.Name)
	}
	if ctx.IsSet(glVersionFlag.Name) {
		c.GLVersion = ctx.String(glVersionFlag.Name)
	}
	if ctx.IsSet(missingOnlyFlag.Name) {
		c.MissingOnly = ctx.Bool(missingOnlyFlag.Name)
	}
	if ctx.IsSet(formatFlag.Name) {
		c.Format = ctx.String(formatFlag.Name)
	}
	return c.validate()
}

// writeConfig stores c at path, creating the directory.
func writeConfig(path string, c *config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
