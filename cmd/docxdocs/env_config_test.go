package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - Invalid or non-positive timeout and workers values are ignored, not
//   reported.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/saasquatch/stencil-docx-docs/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCXDOCS_CONFIG", "/etc/docxdocs.yaml")
	t.Setenv("DOCXDOCS_OUT_DIR", "/out")
	t.Setenv("DOCXDOCS_FONT", "Georgia")
	t.Setenv("DOCXDOCS_TITLE", "Widgets")
	t.Setenv("DOCXDOCS_AUTHOR", "Acme")
	t.Setenv("DOCXDOCS_WORKERS", "4")
	t.Setenv("DOCXDOCS_TIMEOUT", "2m")

	got := loadEnvConfig()
	want := envConfig{
		ConfigPath: "/etc/docxdocs.yaml",
		OutputDir:  "/out",
		Font:       "Georgia",
		Title:      "Widgets",
		Author:     "Acme",
		Workers:    4,
		Timeout:    2 * time.Minute,
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name    string
		workers string
		timeout string
	}{
		{name: "not numbers", workers: "many", timeout: "soon"},
		{name: "negative", workers: "-2", timeout: "-5s"},
		{name: "zero", workers: "0", timeout: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DOCXDOCS_WORKERS", tt.workers)
			t.Setenv("DOCXDOCS_TIMEOUT", tt.timeout)

			got := loadEnvConfig()
			if got.Workers != 0 || got.Timeout != 0 {
				t.Errorf("Workers = %d, Timeout = %v, want zero", got.Workers, got.Timeout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCXDOCS_AUTHOR", "Acme")
	t.Setenv("DOCXDOCS_AUTOR", "typo")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "unknown environment variable DOCXDOCS_AUTOR") {
		t.Errorf("warning missing for typo: %q", out)
	}
	if strings.Contains(out, "DOCXDOCS_AUTHOR ") {
		t.Errorf("known variable should not warn: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env fills only empty config values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		OutputDir: "env-out",
		Font:      "EnvFont",
		Title:     "Env Title",
		Author:    "Env Author",
		Workers:   6,
		Timeout:   90 * time.Second,
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Output.Dir != "env-out" || cfg.Document.Font != "EnvFont" ||
			cfg.Document.Title != "Env Title" || cfg.Document.Author != "Env Author" {
			t.Errorf("config = %+v", cfg)
		}
		if cfg.Workers != 6 {
			t.Errorf("Workers = %d", cfg.Workers)
		}
		if d, err := cfg.TimeoutDuration(); err != nil || d != 90*time.Second {
			t.Errorf("TimeoutDuration() = %v, %v", d, err)
		}
	})

	t.Run("config values win", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Output:   config.OutputConfig{Dir: "cfg-out"},
			Document: config.DocumentConfig{Font: "CfgFont", Title: "Cfg", Author: "cfg"},
			Preview:  config.PreviewConfig{Timeout: "5s"},
			Workers:  1,
		}
		applyEnvConfig(env, cfg)

		if cfg.Output.Dir != "cfg-out" || cfg.Document.Font != "CfgFont" ||
			cfg.Document.Title != "Cfg" || cfg.Document.Author != "cfg" ||
			cfg.Preview.Timeout != "5s" || cfg.Workers != 1 {
			t.Errorf("env overrode config: %+v", cfg)
		}
	})
}
