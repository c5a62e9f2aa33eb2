package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	docxdocs "github.com/saasquatch/stencil-docx-docs"
	"github.com/saasquatch/stencil-docx-docs/internal/config"
)

// sampleJSON has one documented and one @undocumented component.
const sampleJSON = `{
  "timestamp": "2026-10-01T12:00:00",
  "compiler": {"name": "@stencil/core", "version": "4.0.0"},
  "components": [
    {
      "tag": "sqm-widget",
      "docs": "Shows a widget.",
      "docsTags": [{"name": "uiName", "text": "Widget"}],
      "props": [{"name": "label", "attr": "label", "type": "string", "docs": "Label text", "docsTags": []}],
      "slots": [{"name": "footer", "docs": "Footer content"}]
    },
    {
      "tag": "sqm-hidden",
      "docs": "",
      "docsTags": [{"name": "undocumented"}],
      "props": [],
      "slots": []
    }
  ]
}`

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

// newTestEnv returns an environment writing to buffers. The package logger
// installed by generate is reset on cleanup.
func newTestEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Cleanup(func() { docxdocs.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}, &stdout, &stderr
}

// clearEnv blanks every DOCXDOCS_* variable the CLI reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func assertDocx(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("%s is not a zip package", path)
	}
}
