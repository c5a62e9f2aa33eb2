package docxdocs

import "github.com/saasquatch/stencil-docx-docs/internal/docmodel"

// Document model, re-exported so callers and custom serializers need not
// import the internal package.
type (
	Document        = docmodel.Document
	Section         = docmodel.Section
	Footer          = docmodel.Footer
	Block           = docmodel.Block
	Heading         = docmodel.Heading
	Paragraph       = docmodel.Paragraph
	Table           = docmodel.Table
	PageBreak       = docmodel.PageBreak
	TableOfContents = docmodel.TableOfContents
	Run             = docmodel.Run
	Row             = docmodel.Row
	Cell            = docmodel.Cell
	Margins         = docmodel.Margins
	Style           = docmodel.Style
	Orientation     = docmodel.Orientation
	Alignment       = docmodel.Alignment
	Field           = docmodel.Field
)

const (
	Portrait        = docmodel.Portrait
	Landscape       = docmodel.Landscape
	AlignLeft       = docmodel.AlignLeft
	AlignRight      = docmodel.AlignRight
	AlignCenter     = docmodel.AlignCenter
	FieldNone       = docmodel.FieldNone
	FieldPageNumber = docmodel.FieldPageNumber
)

// PlainRun is a single unformatted run.
func PlainRun(text string) Run {
	return docmodel.PlainRun(text)
}
