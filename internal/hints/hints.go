// Package hints builds short remediation hints appended to CLI error
// messages, formatted as "\n  hint: <text>".
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
)

// IsInContainer reports whether the process runs in a container.
// Replaceable in tests.
var IsInContainer = func() bool {
	_, ok := ContainerSignal()
	return ok
}

// ContainerSignal returns the first container indicator found: the Docker
// marker file, the container variable set by Podman and systemd-nspawn, or
// the Kubernetes service host.
func ContainerSignal() (string, bool) {
	if fileutil.FileExists("/.dockerenv") {
		return "/.dockerenv", true
	}
	if v := os.Getenv("container"); v != "" {
		return "container=" + v, true
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return "KUBERNETES_SERVICE_HOST", true
	}
	return "", false
}

// InCI reports whether a CI system's marker variable is set.
func InCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the environment variables that usually fix a
// failed browser launch for the PDF preview.
func ForBrowserConnect() string {
	var hints []string

	if (InCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or drop --pdf")

	return formatHints(hints)
}

// ForTimeout suggests raising the PDF timeout.
func ForTimeout() string {
	return format("for large component libraries, raise --timeout")
}

// ForConfigNotFound suggests --config, or creating the file in the user
// config directory when that location was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	marker := string(filepath.Separator) + "docxdocs" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers directory creation and write failures.
func ForOutputDirectory() string {
	return format("check the output directory is writable, or pick another with --out-dir")
}

// ForDecodeInput explains the expected input format.
func ForDecodeInput() string {
	return format("input must be the JSON written by Stencil's docs-json output target")
}

// ForCodeStyle lists the accepted chroma style names.
func ForCodeStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForDateFormat lists the named date presets.
func ForDateFormat(presets []string) string {
	hint := "use tokens like YYYY, MM, DD, MMMM, or [literal] text"
	if len(presets) > 0 {
		hint += "; presets: " + strings.Join(presets, ", ")
	}
	return format(hint)
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
