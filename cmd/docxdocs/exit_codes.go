package main

import (
	"errors"
	"os"

	docxdocs "github.com/saasquatch/stencil-docx-docs"
	"github.com/saasquatch/stencil-docx-docs/internal/config"
)

// Exit codes follow Unix conventions: 0=success, 1=general, 2=usage, and
// custom codes < 126.
const (
	ExitSuccess = 0 // All documents written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, input or options
	ExitIO      = 3 // Input not found, output not writable
	ExitBrowser = 4 // Chrome errors in the PDF preview
)

// exitCodeFor maps an error to an exit code. Wrapped errors must use %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, docxdocs.ErrBrowserConnect) ||
		errors.Is(err, docxdocs.ErrPageCreate) ||
		errors.Is(err, docxdocs.ErrPageLoad) ||
		errors.Is(err, docxdocs.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, docxdocs.ErrCreateDir) ||
		errors.Is(err, docxdocs.ErrWriteFile) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docxdocs.ErrDecodeInput) ||
		errors.Is(err, docxdocs.ErrInvalidOutFile) ||
		errors.Is(err, docxdocs.ErrInvalidDateFormat) ||
		errors.Is(err, docxdocs.ErrInvalidCodeStyle) ||
		errors.Is(err, docxdocs.ErrFieldTooLong) ||
		errors.Is(err, ErrFlagConflict) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrDuplicateOutput) {
		return ExitUsage
	}

	return ExitGeneral
}
