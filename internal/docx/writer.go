package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/saasquatch/stencil-docx-docs/internal/docmodel"
)

// Sentinel errors.
var (
	ErrNilDocument      = errors.New("nil document")
	ErrUnsupportedBlock = errors.New("unsupported block")
	ErrEncodePart       = errors.New("failed to encode part")
)

// Writer serializes documents to .docx bytes.
type Writer struct {
	updateFields bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithUpdateFields controls whether the package asks the word processor to
// refresh fields when the document is opened. Enabled by default.
func WithUpdateFields(enabled bool) Option {
	return func(w *Writer) {
		w.updateFields = enabled
	}
}

// New creates a Writer.
func New(opts ...Option) *Writer {
	w := &Writer{updateFields: true}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// part is one named entry of the package.
type part struct {
	name string
	v    any
}

// Serialize renders doc as a complete .docx package. Output is
// deterministic for a given document: parts are written in a fixed order and
// stamped with doc.Created.
func (w *Writer) Serialize(doc *docmodel.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	var (
		bodyEls     []any
		final       *sectionProps
		footerNames []string
		footerParts []part
		docRels     = relationships{
			NS: nsPR,
			Items: []relationship{
				{ID: "rId1", Type: relStyles, Target: "styles.xml"},
				{ID: "rId2", Type: relSettings, Target: "settings.xml"},
			},
		}
	)

	for i, s := range doc.Sections {
		els, err := convertBlocks(s.Blocks)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}

		footerID := ""
		if s.Footer != nil {
			fEls, err := convertBlocks(s.Footer.Blocks)
			if err != nil {
				return nil, fmt.Errorf("section %d footer: %w", i, err)
			}
			// A footer must end with a paragraph.
			fEls = append(fEls, paragraph{})

			name := fmt.Sprintf("footer%d.xml", len(footerNames)+1)
			footerID = fmt.Sprintf("rId%d", len(docRels.Items)+1)
			footerNames = append(footerNames, name)
			footerParts = append(footerParts, part{name: "word/" + name, v: footerPart{Elements: fEls}})
			docRels.Items = append(docRels.Items, relationship{ID: footerID, Type: relFooter, Target: name})
		}

		sp := sectionPropsFor(s, footerID)
		bodyEls = append(bodyEls, els...)
		if i == len(doc.Sections)-1 {
			final = sp
		} else {
			bodyEls = append(bodyEls, paragraph{Props: &paragraphProps{Section: sp}})
		}
	}
	if final == nil {
		final = sectionPropsFor(docmodel.Section{}, "")
	}

	parts := []part{
		{name: partContentTypes, v: newContentTypes(footerNames)},
		{name: partRootRels, v: rootRelationships()},
		{name: partCore, v: newCoreProps(doc.Title, doc.Creator, doc.Created)},
		{name: partApp, v: newAppProps()},
		{name: partDocument, v: document{W: nsW, R: nsR, Body: body{Elements: bodyEls, Final: final}}},
		{name: partStyles, v: newStyles(doc.Styles)},
		{name: partSettings, v: newSettings(w.updateFields)},
	}
	parts = append(parts, footerParts...)
	parts = append(parts, part{name: partDocumentRels, v: docRels})

	return writeZip(parts, doc.Created)
}

// Serialize renders doc with a default Writer.
func Serialize(doc *docmodel.Document) ([]byte, error) {
	return New().Serialize(doc)
}

func writeZip(parts []part, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		data, err := marshalPart(p.v)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrEncodePart, p.name, err)
		}
		hdr := &zip.FileHeader{Name: p.name, Method: zip.Deflate}
		if !modified.IsZero() {
			hdr.Modified = modified
		}
		f, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrEncodePart, p.name, err)
		}
		if _, err := f.Write(data); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrEncodePart, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodePart, err)
	}
	return buf.Bytes(), nil
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlDeclaration), data...), nil
}
