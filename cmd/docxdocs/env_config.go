package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/saasquatch/stencil-docx-docs/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "DOCXDOCS_"

// envConfig holds overrides read from the environment, for CI pipelines
// that cannot ship a YAML file.
type envConfig struct {
	ConfigPath string        // DOCXDOCS_CONFIG: config file name or path
	OutputDir  string        // DOCXDOCS_OUT_DIR: output directory
	Font       string        // DOCXDOCS_FONT: body text font
	Title      string        // DOCXDOCS_TITLE: cover title
	Author     string        // DOCXDOCS_AUTHOR: cover author
	Workers    int           // DOCXDOCS_WORKERS: parallel workers
	Timeout    time.Duration // DOCXDOCS_TIMEOUT: PDF preview timeout
}

// knownEnvVars lists valid DOCXDOCS_* variables, to catch typos.
var knownEnvVars = map[string]bool{
	"DOCXDOCS_CONFIG":  true,
	"DOCXDOCS_OUT_DIR": true,
	"DOCXDOCS_FONT":    true,
	"DOCXDOCS_TITLE":   true,
	"DOCXDOCS_AUTHOR":  true,
	"DOCXDOCS_WORKERS": true,
	"DOCXDOCS_TIMEOUT": true,
}

// loadEnvConfig reads the DOCXDOCS_* variables. Unparsable or non-positive
// numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("DOCXDOCS_CONFIG"),
		OutputDir:  os.Getenv("DOCXDOCS_OUT_DIR"),
		Font:       os.Getenv("DOCXDOCS_FONT"),
		Title:      os.Getenv("DOCXDOCS_TITLE"),
		Author:     os.Getenv("DOCXDOCS_AUTHOR"),
	}

	if timeout := os.Getenv("DOCXDOCS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("DOCXDOCS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports DOCXDOCS_* variables that are not recognized.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig fills config values that are still empty, so the order is
// flags > env > config file > defaults. Flags are merged afterwards.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Font != "" && cfg.Document.Font == "" {
		cfg.Document.Font = env.Font
	}
	if env.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = env.Title
	}
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
	if env.Timeout > 0 && cfg.Preview.Timeout == "" {
		cfg.Preview.Timeout = env.Timeout.String()
	}
}
