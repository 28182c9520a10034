// Package config loads trainer settings and table scenarios from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the settings file read when no path is given.
const DefaultFile = "trainer.hcl"

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")

	logFormats = []string{"text", "json", "logfmt"}
)

// Config holds trainer settings
type Config struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	// TablePath overrides the embedded equity table.
	TablePath string           `hcl:"table_path,optional"`
	NoColor   bool             `hcl:"no_color,optional"`
	Generator *GeneratorConfig `hcl:"generator,block"`
}

// GeneratorConfig holds defaults for table generation
type GeneratorConfig struct {
	Samples int    `hcl:"samples,optional"`
	Seed    int64  `hcl:"seed,optional"`
	Workers int    `hcl:"workers,optional"`
	Output  string `hcl:"output,optional"`
}

// Default returns the settings used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.Generator == nil {
		c.Generator = &GeneratorConfig{}
	}
	if c.Generator.Samples == 0 {
		c.Generator.Samples = 20000
	}
	if c.Generator.Output == "" {
		c.Generator.Output = "headsup.json"
	}
}

// Load reads settings from filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes settings from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	var c Config
	if err := decode(src, filename, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(src []byte, filename string, target any) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	if diags := gohcl.DecodeBody(file.Body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("%w: log_format %q must be one of %v", ErrInvalidConfig, c.LogFormat, logFormats)
	}
	if c.Generator != nil {
		if c.Generator.Samples < 0 {
			return fmt.Errorf("%w: generator samples must not be negative", ErrInvalidConfig)
		}
		if c.Generator.Workers < 0 {
			return fmt.Errorf("%w: generator workers must not be negative", ErrInvalidConfig)
		}
	}
	return nil
}
