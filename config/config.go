// Package config loads gateway admission settings from YAML and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	admission "github.com/kingfs/go-llm-admission"
)

// Channel policy modes.
const (
	ChannelModeCapability = "capability"
	ChannelModeName       = "name"
	ChannelModeBoth       = "both"
)

// Environment variables that override file settings.
const (
	EnvProxyURL    = "ADMISSION_PROXY_URL"
	EnvLogLevel    = "ADMISSION_LOG_LEVEL"
	EnvModelsFile  = "ADMISSION_MODELS_FILE"
	EnvChannelMode = "ADMISSION_CHANNEL_MODE"
)

// Config captures admission settings.
//
// Example YAML:
//
//	logging:
//	  level: info
//	proxy_url: socks5://127.0.0.1:1080
//	models_file: data/models.yaml
//	channel:
//	  mode: capability
type Config struct {
	Logging    Logging `yaml:"logging"`
	ProxyURL   string  `yaml:"proxy_url"`
	ModelsFile string  `yaml:"models_file"`
	Channel    Channel `yaml:"channel"`
}

// Logging captures logging-specific settings.
type Logging struct {
	Level string `yaml:"level"`
}

// Channel selects which models are pinned to the channel transport.
// Models is only consulted in "name" and "both" modes.
type Channel struct {
	Mode   string   `yaml:"mode"`
	Models []string `yaml:"models"`
}

// Default returns a Config populated with hard-coded defaults.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info"},
		Channel: Channel{Mode: ChannelModeCapability},
	}
}

// Load reads the YAML file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path must not be empty")
	}
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS performs the same operation as Load on an fs.FS.
func LoadFS(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the process environment. Callers that
// want .env support load it first with godotenv.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvProxyURL); ok {
		c.ProxyURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvModelsFile); v != "" {
		c.ModelsFile = v
	}
	if v := os.Getenv(EnvChannelMode); v != "" {
		c.Channel.Mode = v
	}
	return c.Validate()
}

// Validate rejects settings that cannot be acted on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Channel.Mode) {
	case ChannelModeCapability:
	case ChannelModeName, ChannelModeBoth:
		if len(c.Channel.Models) == 0 {
			return fmt.Errorf("channel mode %q needs at least one model", c.Channel.Mode)
		}
	default:
		return fmt.Errorf("unknown channel mode %q", c.Channel.Mode)
	}
	return nil
}

// Policy returns the channel policy selected by c.Channel.
func (c *Config) Policy() admission.ChannelPolicy {
	switch strings.ToLower(c.Channel.Mode) {
	case ChannelModeName:
		return admission.NewNamePolicy(c.Channel.Models...)
	case ChannelModeBoth:
		return admission.AnyPolicy{
			admission.CapabilityPolicy{},
			admission.NewNamePolicy(c.Channel.Models...),
		}
	default:
		return admission.CapabilityPolicy{}
	}
}

// Registry returns the registry named by c.ModelsFile, or the built-in
// table when none is configured.
func (c *Config) Registry() (*admission.Registry, error) {
	if c.ModelsFile == "" {
		return admission.Default(), nil
	}
	entries, err := LoadModelsFile(c.ModelsFile)
	if err != nil {
		return nil, err
	}
	return admission.NewRegistry(entries)
}
