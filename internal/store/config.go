package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults. Flags override it; it overrides built-ins.
type Config struct {
	// Sort is the default sort mode (none|difficulty|topic).
	Sort string `yaml:"sort,omitempty" json:"sort,omitempty"`
	// Format is the default output format for scriptable commands.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// TopicsFile points at a YAML file of topic keyword overrides.
	TopicsFile string `yaml:"topicsFile,omitempty" json:"topicsFile,omitempty"`
	// Fold enables Unicode compatibility folding when normalizing titles.
	Fold bool `yaml:"fold,omitempty" json:"fold,omitempty"`

	TUI *TUIConfig `yaml:"tui,omitempty" json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// ConfigKeys lists the keys accepted by Config.Set.
func ConfigKeys() []string {
	return []string{"sort", "format", "topicsFile", "fold", "tui.theme"}
}

// Set assigns one config value by key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "sort":
		c.Sort = value
	case "format":
		c.Format = value
	case "topicsFile":
		c.TopicsFile = value
	case "fold":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("fold: %w", err)
		}
		c.Fold = b
	case "tui.theme":
		switch strings.ToLower(value) {
		case "", "auto", "light", "dark":
		default:
			return fmt.Errorf("tui.theme: want light|dark|auto, got %q", value)
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Theme = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %q (known: %s)", key, strings.Join(ConfigKeys(), ", "))
	}
	return nil
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.listcmp).
	if v := strings.TrimSpace(os.Getenv("LISTCMP_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".listcmp"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

const configFileName = "config.yaml"

// LoadConfig reads config.yaml from ConfigDir; a missing file yields an empty Config.
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(dir)
}

// LoadConfigFrom reads config.yaml from dir.
func LoadConfigFrom(dir string) (*Config, error) {
	path := filepath.Join(dir, configFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return SaveConfigTo(dir, cfg)
}

// SaveConfigTo writes cfg to dir/config.yaml, creating dir if needed.
func SaveConfigTo(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, configFileName+".*.tmp", filepath.Join(dir, configFileName), b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
