// Package docmodel defines the abstract word-processing document produced by
// the rendering pipeline and consumed by serializers.
//
// The model is plain data: a Document holds named styles and an ordered list
// of sections, each section holds an ordered list of blocks. Nothing in this
// package knows about a concrete file format.
package docmodel

import "time"

// Orientation of a section's pages.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Field identifies a computed value inserted by the word processor.
type Field int

const (
	FieldNone Field = iota
	FieldPageNumber
)

// Style is a named paragraph style. Sizes are in half-points, spacing in
// twentieths of a point. OutlineLevel 0 means "not part of the outline".
type Style struct {
	ID            string
	Name          string
	QuickFormat   bool
	Font          string
	Size          int
	Bold          bool
	SpacingBefore int
	SpacingAfter  int
	OutlineLevel  int
}

// Document is the root of the model.
type Document struct {
	Title    string
	Creator  string
	Created  time.Time
	Styles   []Style
	Sections []Section
}

// Section is a run of blocks sharing page layout.
type Section struct {
	Orientation Orientation
	Footer      *Footer
	Blocks      []Block
}

// Footer content repeated at the bottom of every page in a section.
type Footer struct {
	Blocks []Block
}

// Block is any element that can appear in a section body.
type Block interface {
	isBlock()
}

// Heading is an outlined heading. Level is 1-based.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of formatted text. Style references a Style.ID; empty
// means the default body style. Source holds the Markdown the runs were
// rendered from, if any, for renderers that prefer to re-render it.
type Paragraph struct {
	Style  string
	Align  Alignment
	Runs   []Run
	Source string
}

// Table is a grid of rows. Width and ColumnWidths are in twentieths of a
// point (DXA).
type Table struct {
	Width        int
	ColumnWidths []int
	Borderless   bool
	Rows         []Row
}

// PageBreak forces the following block onto a new page.
type PageBreak struct{}

// TableOfContents is a placeholder the word processor fills from headings
// whose outline level is between MinLevel and MaxLevel.
type TableOfContents struct {
	Title     string
	Hyperlink bool
	MinLevel  int
	MaxLevel  int
}

func (Heading) isBlock()         {}
func (Paragraph) isBlock()       {}
func (Table) isBlock()           {}
func (PageBreak) isBlock()       {}
func (TableOfContents) isBlock() {}

// Run is a span of uniformly formatted text. A run with Break set renders as
// a line break; a run with Field set renders the field instead of Text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Color  string // RGB hex without '#', empty for automatic
	Break  bool
	Field  Field
}

// Row is one table row. Header rows repeat at the top of each page.
type Row struct {
	Header bool
	Cells  []Cell
}

// Margins in DXA.
type Margins struct {
	Top, Bottom, Left, Right int
}

// Cell is one table cell.
type Cell struct {
	Margins    Margins
	Shaded     bool
	Borderless bool
	Paragraphs []Paragraph
}

// Text returns the concatenated text of the paragraph's runs. Breaks become
// newlines and fields contribute nothing.
func (p Paragraph) Text() string {
	var n int
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		switch {
		case r.Break:
			buf = append(buf, '\n')
		case r.Field != FieldNone:
		default:
			buf = append(buf, r.Text...)
		}
	}
	return string(buf)
}

// Text returns the text of the cell's paragraphs joined by newlines.
func (c Cell) Text() string {
	s := ""
	for i, p := range c.Paragraphs {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}

// TotalWidth sums the column widths.
func (t Table) TotalWidth() int {
	total := 0
	for _, w := range t.ColumnWidths {
		total += w
	}
	return total
}

// HeaderRows returns the number of leading header rows.
func (t Table) HeaderRows() int {
	n := 0
	for _, r := range t.Rows {
		if !r.Header {
			break
		}
		n++
	}
	return n
}

// PlainRun is shorthand for a single unformatted run.
func PlainRun(text string) Run {
	return Run{Text: text}
}
