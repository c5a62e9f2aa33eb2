package docxdocs

import "errors"

// Sentinel errors for library operations.
var (
	ErrDecodeInput = errors.New("failed to decode component metadata")
	ErrSerialize   = errors.New("failed to serialize document")
	ErrCreateDir   = errors.New("failed to create output directory")
	ErrWriteFile   = errors.New("failed to write output file")
	ErrRenderHTML  = errors.New("failed to render HTML preview")

	// Browser errors from the PDF preview.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Options validation errors.
	ErrInvalidOutFile    = errors.New("invalid output file name")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidCodeStyle  = errors.New("unknown code style")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)
