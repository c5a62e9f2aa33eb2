package main

// Notes:
// - runMain: exit codes and routing. Generation runs end to end into temp
//   directories without --pdf, so no browser is needed.
// - Tests that generate are not parallel: they set environment variables and
//   the CLI installs the package-wide logger.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command routing and exit codes
// ---------------------------------------------------------------------------

func TestRunMain_Routing(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no args", args: []string{"docxdocs"}, wantCode: ExitUsage, wantStderr: "Usage: docxdocs"},
		{name: "version", args: []string{"docxdocs", "version"}, wantCode: ExitSuccess, wantStdout: "docxdocs " + Version},
		{name: "--version", args: []string{"docxdocs", "--version"}, wantCode: ExitSuccess, wantStdout: "docxdocs " + Version},
		{name: "help", args: []string{"docxdocs", "help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help generate", args: []string{"docxdocs", "help", "generate"}, wantCode: ExitSuccess, wantStdout: "--exclude-tag"},
		{name: "--help", args: []string{"docxdocs", "--help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help unknown", args: []string{"docxdocs", "help", "bogus"}, wantCode: ExitUsage, wantStderr: "Unknown command: bogus"},
		{name: "unknown command", args: []string{"docxdocs", "bogus"}, wantCode: ExitUsage, wantStderr: "Unknown command: bogus"},
		{name: "generate help", args: []string{"docxdocs", "generate", "--help"}, wantCode: ExitSuccess, wantStderr: "Usage: docxdocs generate"},
		{name: "unknown flag", args: []string{"docxdocs", "generate", "--bogus"}, wantCode: ExitUsage, wantStderr: "error:"},
		{name: "flag conflict", args: []string{"docxdocs", "--no-exclude", "--exclude-tag", "x"}, wantCode: ExitUsage, wantStderr: "conflicting flags"},
		{name: "no input", args: []string{"docxdocs", "generate"}, wantCode: ExitUsage, wantStderr: "no input specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			env, stdout, stderr := newTestEnv(t)

			code := runMain(tt.args, env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_Generate(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writeInput(t, dir, "components.json", sampleJSON)
	outDir := filepath.Join(dir, "out")
	env, stdout, stderr := newTestEnv(t)

	// A .json argument runs generate without naming the command.
	code := runMain([]string{"docxdocs", in, "-o", outDir, "-q"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	assertDocx(t, filepath.Join(outDir, "docs.docx"))
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout)
	}
}

func TestRunMain_GenerateErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string // file content; empty means the file is missing
		extraArgs  []string
		wantCode   int
		wantStderr string
	}{
		{name: "missing input", wantCode: ExitIO, wantStderr: "failed to read input file"},
		{name: "invalid json", input: "{not json", wantCode: ExitUsage, wantStderr: "docs-json"},
		{name: "bad out file", input: sampleJSON, extraArgs: []string{"-f", "docs.pdf"}, wantCode: ExitUsage, wantStderr: "invalid output file name"},
		{name: "bad code style", input: sampleJSON, extraArgs: []string{"--markdown", "--code-style", "nope"}, wantCode: ExitUsage, wantStderr: "available:"},
		{name: "missing config", input: sampleJSON, extraArgs: []string{"-c", "no-such-config"}, wantCode: ExitUsage, wantStderr: "--config"},
		{name: "too many workers", input: sampleJSON, extraArgs: []string{"-w", "1000"}, wantCode: ExitUsage, wantStderr: "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			t.Chdir(dir)
			in := filepath.Join(dir, "in.json")
			if tt.input != "" {
				writeInput(t, dir, "in.json", tt.input)
			}
			env, _, stderr := newTestEnv(t)

			args := append([]string{"docxdocs", "generate", in, "-o", filepath.Join(dir, "out")}, tt.extraArgs...)
			code := runMain(args, env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
			if _, err := os.Stat(filepath.Join(dir, "out", "docs.docx")); err == nil {
				t.Error("no document should be written on error")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestLooksLikeJSON - Argument classification
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	if !isCommand("generate", "generate") {
		t.Error("isCommand(generate, generate) = false")
	}
	if isCommand("gen", "generate") || isCommand("Generate", "generate") {
		t.Error("isCommand should match exact names only")
	}
}

func TestLooksLikeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"docs.json", true},
		{"build/DOCS.JSON", true},
		{"docs.yaml", false},
		{"json", false},
		{"generate", false},
	}

	for _, tt := range tests {
		if got := looksLikeJSON(tt.arg); got != tt.want {
			t.Errorf("looksLikeJSON(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
