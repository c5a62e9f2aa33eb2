package docxdocs

import (
	"github.com/saasquatch/stencil-docx-docs/internal/docx"
	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
)

// Serializer turns a Document into file bytes.
type Serializer interface {
	Serialize(doc *Document) ([]byte, error)
}

// FileWriter performs the output filesystem operations.
type FileWriter interface {
	// EnsureDir creates path and its parents; an existing directory is fine.
	EnsureDir(path string) error
	// WriteFile replaces the file at path with data.
	WriteFile(path string, data []byte) error
}

// Compile-time interface checks.
var (
	_ Serializer = (*docx.Writer)(nil)
	_ FileWriter = osFileWriter{}
)

// NewDocxSerializer returns the default .docx serializer.
func NewDocxSerializer() Serializer {
	return docx.New()
}

// osFileWriter writes to the local filesystem.
type osFileWriter struct{}

func (osFileWriter) EnsureDir(path string) error {
	return fileutil.EnsureDir(path)
}

func (osFileWriter) WriteFile(path string, data []byte) error {
	return fileutil.WriteFile(path, data)
}
