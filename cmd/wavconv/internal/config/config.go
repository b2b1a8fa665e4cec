// SPDX-License-Identifier: EPL-2.0

// Package config loads and saves the wavconv configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/cmd/wavconv/internal/logging"
)

const (
	// DefaultBaseDir is the configuration directory under the home directory.
	DefaultBaseDir = ".wavconv"
	// DefaultConfigFile is the configuration file name.
	DefaultConfigFile = "config.yaml"
)

var ErrProfileNotFound = errors.New("profile not found")

// Config is the content of the configuration file.
type Config struct {
	// CurrentProfile is used by convert when no --profile is given.
	CurrentProfile string `yaml:"current_profile,omitempty"`

	// OutputDir receives converted files when no output path is given.
	// Empty means the system temp directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	Profiles map[string]*Profile `yaml:"profiles,omitempty"`

	Log Log `yaml:"log,omitempty"`

	path string
}

// Profile is a named conversion target. Zero or nil fields keep the value
// of the source file.
type Profile struct {
	Bits       int   `yaml:"bits,omitempty"`
	Stereo     *bool `yaml:"stereo,omitempty"`
	SampleRate int   `yaml:"sample_rate,omitempty"`
}

// Log holds logging settings.
type Log struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

// DefaultPath returns ~/.wavconv/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, DefaultBaseDir, DefaultConfigFile), nil
}

// Load reads the configuration at path, or at DefaultPath when path is
// empty. A missing file yields an empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{
		Profiles: make(map[string]*Profile),
		path:     path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	cfg.path = path

	return cfg, nil
}

// Save writes the configuration, creating its directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// AddProfile validates p, stores it under name and saves.
func (c *Config) AddProfile(name string, p *Profile) error {
	if name == "" {
		return errors.New("profile name is required")
	}

	if err := p.validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}

	c.Profiles[name] = p

	return c.Save()
}

// UseProfile makes name the current profile and saves.
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	c.CurrentProfile = name

	return c.Save()
}

// Profile returns the named profile, the current one when name is empty,
// or nil when neither exists.
func (c *Config) Profile(name string) (*Profile, error) {
	if name == "" {
		name = c.CurrentProfile
		if name == "" {
			return nil, nil
		}
	}

	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}

	return p, nil
}

// ProfileNames returns the profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// LogOptions converts the log settings for logging.New.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Level: c.Log.Level,
		File: logging.FileOptions{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			Compress:   c.Log.Compress,
		},
	}
}

// Apply overlays the profile's set fields on t. A nil profile leaves t as is.
func (p *Profile) Apply(t audio.Target) audio.Target {
	if p == nil {
		return t
	}

	if p.Bits != 0 {
		t.BitDepth = p.Bits
	}
	if p.Stereo != nil {
		t.Stereo = *p.Stereo
	}
	if p.SampleRate != 0 {
		t.SampleRate = p.SampleRate
	}

	return t
}

func (p *Profile) validate() error {
	if p.Bits != 0 && !audio.ValidBitDepth(p.Bits) {
		return fmt.Errorf("%w: %d-bit", audio.ErrUnsupportedFormat, p.Bits)
	}

	if p.SampleRate < 0 {
		return fmt.Errorf("%w: sample rate %d", audio.ErrUnsupportedFormat, p.SampleRate)
	}

	return nil
}
