// Package config loads the docxdocs YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxInputSize caps the config file size (1MB).
const MaxInputSize = 1 << 20

// AppDir is the directory under the user config dir searched by name.
const AppDir = "docxdocs"

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxFileNameLength   = 255
	MaxTitleLength      = 500
	MaxAuthorLength     = 200
	MaxFontLength       = 100
	MaxDateFormatLength = 64
	MaxTagLength        = 100
	MaxCodeStyleLength  = 50
	MaxWorkers          = 64
)

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Filter   FilterConfig   `yaml:"filter"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Preview  PreviewConfig  `yaml:"preview"`
	Workers  int            `yaml:"workers"` // 0 = one per CPU
}

// OutputConfig defines where the .docx file is written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"` // single-input runs only
}

// DocumentConfig defines cover and style settings.
type DocumentConfig struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Font       string `yaml:"font"`
	DateFormat string `yaml:"dateFormat"`
}

// FilterConfig defines tag-based exclusion. A missing excludeTags key keeps
// the default; an empty list disables exclusion.
type FilterConfig struct {
	ExcludeTags []string `yaml:"excludeTags"`
}

// MarkdownConfig enables Markdown rendering of documentation strings.
type MarkdownConfig struct {
	Enabled   bool   `yaml:"enabled"`
	CodeStyle string `yaml:"codeStyle"`
}

// PreviewConfig enables the HTML and PDF previews.
type PreviewConfig struct {
	HTML    bool   `yaml:"html"`
	PDF     bool   `yaml:"pdf"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// DefaultConfig returns an empty configuration; the library fills in its
// own defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// TimeoutDuration parses Preview.Timeout. An empty value yields zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Preview.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Preview.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: preview.timeout %q: %v", ErrInvalidValue, c.Preview.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: preview.timeout must not be negative", ErrInvalidValue)
	}
	return d, nil
}

// Validate checks field lengths and ranges. Called by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.file", c.Output.File, MaxFileNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.font", c.Document.Font, MaxFontLength},
		{"document.dateFormat", c.Document.DateFormat, MaxDateFormatLength},
		{"markdown.codeStyle", c.Markdown.CodeStyle, MaxCodeStyleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, tag := range c.Filter.ExcludeTags {
		if err := validateFieldLength(fmt.Sprintf("filter.excludeTags[%d]", i), tag, MaxTagLength); err != nil {
			return err
		}
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: filter.excludeTags[%d] is empty", ErrInvalidValue, i)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name. A value
// containing a path separator is read as a path; otherwise it is searched
// by name. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// name.yaml and name.yml in the current directory, then in AppDir under the
// user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Tried: tried}
}

// NotFoundError lists the paths searched for a config name. It matches
// ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
