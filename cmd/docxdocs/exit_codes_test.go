package main

// Notes:
// - exitCodeFor: every sentinel plus wrapped errors, to check the errors.Is
//   chain.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	docxdocs "github.com/saasquatch/stencil-docx-docs"
	"github.com/saasquatch/stencil-docx-docs/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		{"browser connect", docxdocs.ErrBrowserConnect, ExitBrowser},
		{"page create", docxdocs.ErrPageCreate, ExitBrowser},
		{"page load", docxdocs.ErrPageLoad, ExitBrowser},
		{"pdf generation", docxdocs.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", docxdocs.ErrBrowserConnect), ExitBrowser},

		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"no input", ErrNoInput, ExitUsage},
		{"create dir", docxdocs.ErrCreateDir, ExitIO},
		{"write file", docxdocs.ErrWriteFile, ExitIO},
		{"wrapped read input", fmt.Errorf("%w: %w", ErrReadInput, os.ErrNotExist), ExitIO},

		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found error", &config.NotFoundError{Tried: []string{"a.yaml"}}, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config field too long", config.ErrFieldTooLong, ExitUsage},
		{"config invalid value", config.ErrInvalidValue, ExitUsage},
		{"decode input", docxdocs.ErrDecodeInput, ExitUsage},
		{"invalid out file", docxdocs.ErrInvalidOutFile, ExitUsage},
		{"invalid date format", docxdocs.ErrInvalidDateFormat, ExitUsage},
		{"invalid code style", docxdocs.ErrInvalidCodeStyle, ExitUsage},
		{"field too long", docxdocs.ErrFieldTooLong, ExitUsage},
		{"flag conflict", ErrFlagConflict, ExitUsage},
		{"duplicate output", ErrDuplicateOutput, ExitUsage},

		{"serialize", docxdocs.ErrSerialize, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d must be in (2, 126)", code)
		}
	}
}
