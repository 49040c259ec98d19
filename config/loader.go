package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigPath is tried when no custom path is given
	DefaultConfigPath = "turret.toml"
)

var (
	ErrNotFound    = errors.New("config file not found")
	ErrUnknownKeys = errors.New("unknown config keys")
)

//go:embed default.toml
var embeddedDefault string

// Embedded returns the compiled-in default file
func Embedded() string {
	return embeddedDefault
}

// Decode parses TOML data over the defaults, so omitted keys keep their default value
// Keys that map to no field are reported as ErrUnknownKeys
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Load reads and decodes the file at path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadAuto loads with priority: customPath > DefaultConfigPath > embedded
// Returns the source the configuration came from
func LoadAuto(customPath string) (Config, string, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		cfg, err := Load(customPath)
		return cfg, customPath, err
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		cfg, err := Load(DefaultConfigPath)
		return cfg, DefaultConfigPath, err
	}

	// Priority 3: Embedded fallback
	cfg, err := Decode(embeddedDefault)
	return cfg, "embedded", err
}

// Encode writes cfg as TOML
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Save writes cfg to path, replacing any existing file
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
