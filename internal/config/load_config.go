package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"setup-launcher/internal/fixup"
	"setup-launcher/internal/logger"
	"setup-launcher/internal/plan"
)

// Default returns the configuration used when no file is present, rooted at root.
func Default(root string) Config {
	eta := plan.DefaultDotfilesETAMinutes
	return Config{
		Root:   root,
		Runner: plan.DefaultRunner,
		Dotfiles: Dotfiles{
			Target:     plan.DefaultDotfilesTarget,
			ETAMinutes: &eta,
		},
		Pager: Pager{
			Tool:  "git",
			Value: fixup.DefaultPagerValue,
			Keys:  append([]string(nil), fixup.DefaultPagerKeys...),
		},
	}
}

// LoadConfig reads the YAML file at path. A missing file yields Default rooted at
// the current directory; a relative root is resolved against the file's directory.
func LoadConfig(path string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg := Default(cwd)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("[DEBUG] No config at %s, using defaults\n", path)
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	cfg.merge(file, base)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Loaded config from %s: %+v\n", path, cfg)
	return cfg, nil
}

// merge overlays the non-empty fields of file onto c.
func (c *Config) merge(file Config, base string) {
	if file.Root != "" {
		if filepath.IsAbs(file.Root) {
			c.Root = file.Root
		} else {
			c.Root = filepath.Join(base, file.Root)
		}
	} else {
		c.Root = base
	}
	if file.Runner != "" {
		c.Runner = file.Runner
	}
	if file.Dotfiles.Target != "" {
		c.Dotfiles.Target = file.Dotfiles.Target
	}
	if file.Dotfiles.ETAMinutes != nil {
		eta := *file.Dotfiles.ETAMinutes
		c.Dotfiles.ETAMinutes = &eta
	}
	if file.Pager.Tool != "" {
		c.Pager.Tool = file.Pager.Tool
	}
	if file.Pager.Value != "" {
		c.Pager.Value = file.Pager.Value
	}
	if len(file.Pager.Keys) > 0 {
		c.Pager.Keys = append([]string(nil), file.Pager.Keys...)
	}
	if file.StateFile != "" {
		if filepath.IsAbs(file.StateFile) {
			c.StateFile = file.StateFile
		} else {
			c.StateFile = filepath.Join(base, file.StateFile)
		}
	}
}

func (c Config) validate() error {
	if c.Dotfiles.ETAMinutes != nil && *c.Dotfiles.ETAMinutes < 0 {
		return errors.New("dotfiles.eta_minutes must not be negative")
	}
	return nil
}

// Builder returns the plan builder described by the configuration.
func (c Config) Builder() plan.Builder {
	b := plan.NewBuilder(c.Root)
	b.Runner = c.Runner
	b.DotfilesTarget = c.Dotfiles.Target
	if c.Dotfiles.ETAMinutes != nil {
		b.DotfilesETAMinutes = *c.Dotfiles.ETAMinutes
	}
	return b
}
