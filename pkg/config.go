package bumpytrack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no config path is given.
const DefaultConfigPath = ".bumpytrack.yml"

// VersionPlaceholder is substituted with a version when rendering a search template.
const VersionPlaceholder = "{version}"

// ConfigFormat is the serialization of a config file, chosen by its extension.
type ConfigFormat string

const (
	FormatYAML ConfigFormat = "yaml"
	FormatTOML ConfigFormat = "toml"
)

// ReplaceSpec describes one file whose version string is rewritten.
type ReplaceSpec struct {
	Path           string `yaml:"path" toml:"path"`
	SearchTemplate string `yaml:"search_template" toml:"search_template"`
}

// Config is the content of a bumpytrack config file. Optional scalars are
// pointers so that an absent key can be told apart from a zero value.
type Config struct {
	CurrentVersion *string       `yaml:"current_version" toml:"current_version"`
	FileReplaces   []ReplaceSpec `yaml:"file_replaces" toml:"file_replaces"`
	GitCommit      *bool         `yaml:"git_commit" toml:"git_commit"`
	GitTag         *bool         `yaml:"git_tag" toml:"git_tag"`
	GitPath        string        `yaml:"git_path" toml:"git_path"`

	// Path and Format record where the config was loaded from.
	Path   string       `yaml:"-" toml:"-"`
	Format ConfigFormat `yaml:"-" toml:"-"`
}

// FormatForPath picks the config format from the file extension. Anything that
// is not .toml is treated as YAML.
func FormatForPath(path string) ConfigFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w at '%s': %v", ErrConfigLoad, path, err)
	}

	format := FormatForPath(path)
	cfg, err := parseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w at '%s': %v", ErrConfigLoad, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w at '%s': %v", ErrConfigLoad, path, err)
	}
	cfg.Path = path
	cfg.Format = format
	return cfg, nil
}

func parseConfig(data []byte, format ConfigFormat) (*Config, error) {
	cfg := &Config{}
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		if unknown := md.Undecoded(); len(unknown) > 0 {
			return nil, fmt.Errorf("unknown keys %v", unknown)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves every key unset.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	return cfg, nil
}

// Validate checks the structural shape of the declared file replacements.
func (c *Config) Validate() error {
	for i, fr := range c.FileReplaces {
		if fr.Path == "" {
			return fmt.Errorf("file_replaces[%d]: path is required", i)
		}
		if !strings.Contains(fr.SearchTemplate, VersionPlaceholder) {
			return fmt.Errorf("file_replaces[%d] (%s): search_template must contain %s", i, fr.Path, VersionPlaceholder)
		}
	}
	return nil
}

// GitBinary returns the git executable to invoke.
func (c *Config) GitBinary() string {
	if c.GitPath == "" {
		return "git"
	}
	return c.GitPath
}
