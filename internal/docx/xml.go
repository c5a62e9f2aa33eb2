package docx

import (
	"encoding/xml"
	"strconv"
)

// XML namespaces declared on part roots.
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPR = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// val is the common single-attribute element (<w:pStyle w:val="..."/>).
type val struct {
	Val string `xml:"w:val,attr"`
}

func intVal(n int) *val {
	return &val{Val: strconv.Itoa(n)}
}

// flag is a boolean toggle element such as <w:b/>.
type flag struct{}

// MarshalXML writes flag as a self-closing element.
func (flag) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = nil
	return e.EncodeElement(struct{}{}, start)
}

// ---------------------------------------------------------------------------
// Body
// ---------------------------------------------------------------------------

type document struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    body     `xml:"w:body"`
}

// body keeps paragraphs and tables in document order.
type body struct {
	Elements []any
	Final    *sectionProps
}

// MarshalXML encodes body elements in order and closes with the final
// section properties.
func (b body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, el := range b.Elements {
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	if b.Final != nil {
		if err := e.EncodeElement(b.Final, xml.StartElement{Name: xml.Name{Local: "w:sectPr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ---------------------------------------------------------------------------
// Paragraphs and runs
// ---------------------------------------------------------------------------

type paragraph struct {
	XMLName xml.Name        `xml:"w:p"`
	Props   *paragraphProps `xml:"w:pPr,omitempty"`
	Runs    []run           `xml:"w:r"`
}

// paragraphProps fields are declared in schema order.
type paragraphProps struct {
	Style        *val          `xml:"w:pStyle,omitempty"`
	KeepNext     *flag         `xml:"w:keepNext,omitempty"`
	Spacing      *spacing      `xml:"w:spacing,omitempty"`
	Align        *val          `xml:"w:jc,omitempty"`
	OutlineLevel *val          `xml:"w:outlineLvl,omitempty"`
	Section      *sectionProps `xml:"w:sectPr,omitempty"`
}

type spacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type run struct {
	Props     *runProps  `xml:"w:rPr,omitempty"`
	FieldChar *fieldChar `xml:"w:fldChar,omitempty"`
	Instr     *text      `xml:"w:instrText,omitempty"`
	Break     *lineBreak `xml:"w:br,omitempty"`
	Text      *text      `xml:"w:t,omitempty"`
}

// runProps fields are declared in schema order.
type runProps struct {
	Fonts    *fonts `xml:"w:rFonts,omitempty"`
	Bold     *flag  `xml:"w:b,omitempty"`
	BoldCs   *flag  `xml:"w:bCs,omitempty"`
	Italic   *flag  `xml:"w:i,omitempty"`
	ItalicCs *flag  `xml:"w:iCs,omitempty"`
	Color    *val   `xml:"w:color,omitempty"`
	Size     *val   `xml:"w:sz,omitempty"`
	SizeCs   *val   `xml:"w:szCs,omitempty"`
}

type fonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

func fontsFor(name string) *fonts {
	return &fonts{ASCII: name, HAnsi: name, EastAsia: name, CS: name}
}

// text is <w:t> or <w:instrText>. Space is always preserved so leading and
// trailing blanks survive.
type text struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

func preserved(s string) *text {
	return &text{Space: "preserve", Value: s}
}

type lineBreak struct {
	Type string `xml:"w:type,attr,omitempty"`
}

type fieldChar struct {
	Type  string `xml:"w:fldCharType,attr"`
	Dirty string `xml:"w:dirty,attr,omitempty"`
}

// ---------------------------------------------------------------------------
// Tables
// ---------------------------------------------------------------------------

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tableProps `xml:"w:tblPr"`
	Grid    tableGrid  `xml:"w:tblGrid"`
	Rows    []tableRow `xml:"w:tr"`
}

// tableProps fields are declared in schema order.
type tableProps struct {
	Width   *width   `xml:"w:tblW,omitempty"`
	Borders *borders `xml:"w:tblBorders,omitempty"`
	Layout  *layout  `xml:"w:tblLayout,omitempty"`
}

type width struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

func dxa(n int) *width {
	return &width{W: n, Type: "dxa"}
}

type layout struct {
	Type string `xml:"w:type,attr"`
}

type tableGrid struct {
	Columns []gridColumn `xml:"w:gridCol"`
}

type gridColumn struct {
	W int `xml:"w:w,attr"`
}

type tableRow struct {
	Props *rowProps   `xml:"w:trPr,omitempty"`
	Cells []tableCell `xml:"w:tc"`
}

type rowProps struct {
	Header *flag `xml:"w:tblHeader,omitempty"`
}

type tableCell struct {
	Props      *cellProps  `xml:"w:tcPr,omitempty"`
	Paragraphs []paragraph `xml:"w:p"`
}

// cellProps fields are declared in schema order.
type cellProps struct {
	Width   *width       `xml:"w:tcW,omitempty"`
	Borders *borders     `xml:"w:tcBorders,omitempty"`
	Shading *shading     `xml:"w:shd,omitempty"`
	Margins *cellMargins `xml:"w:tcMar,omitempty"`
}

type shading struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

type cellMargins struct {
	Top    *width `xml:"w:top,omitempty"`
	Left   *width `xml:"w:left,omitempty"`
	Bottom *width `xml:"w:bottom,omitempty"`
	Right  *width `xml:"w:right,omitempty"`
}

// borders serves both tblBorders and tcBorders; inside borders are only set
// for tables.
type borders struct {
	Top     *border `xml:"w:top,omitempty"`
	Left    *border `xml:"w:left,omitempty"`
	Bottom  *border `xml:"w:bottom,omitempty"`
	Right   *border `xml:"w:right,omitempty"`
	InsideH *border `xml:"w:insideH,omitempty"`
	InsideV *border `xml:"w:insideV,omitempty"`
}

type border struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

func singleBorders(inside bool) *borders {
	b := &border{Val: "single", Size: 4, Color: "auto"}
	out := &borders{Top: b, Left: b, Bottom: b, Right: b}
	if inside {
		out.InsideH, out.InsideV = b, b
	}
	return out
}

func noBorders(inside bool) *borders {
	b := &border{Val: "none", Size: 0, Color: "auto"}
	out := &borders{Top: b, Left: b, Bottom: b, Right: b}
	if inside {
		out.InsideH, out.InsideV = b, b
	}
	return out
}

// ---------------------------------------------------------------------------
// Sections
// ---------------------------------------------------------------------------

// sectionProps fields are declared in schema order.
type sectionProps struct {
	FooterRefs []footerRef `xml:"w:footerReference"`
	PageSize   pageSize    `xml:"w:pgSz"`
	PageMargin pageMargin  `xml:"w:pgMar"`
}

type footerRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type pageSize struct {
	W      int    `xml:"w:w,attr"`
	H      int    `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

type pageMargin struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// footerPart is the root of word/footerN.xml.
type footerPart struct {
	Elements []any
}

// MarshalXML encodes the footer's blocks in order.
func (f footerPart) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:ftr"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: nsW},
		{Name: xml.Name{Local: "xmlns:r"}, Value: nsR},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, el := range f.Elements {
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ---------------------------------------------------------------------------
// Structured document tags
// ---------------------------------------------------------------------------

// contentControl wraps the table of contents field so Word treats it as a
// TOC building block.
type contentControl struct {
	XMLName xml.Name   `xml:"w:sdt"`
	Props   sdtProps   `xml:"w:sdtPr"`
	Content sdtContent `xml:"w:sdtContent"`
}

type sdtProps struct {
	Alias   *val       `xml:"w:alias,omitempty"`
	DocPart docPartObj `xml:"w:docPartObj"`
}

type docPartObj struct {
	Gallery val   `xml:"w:docPartGallery"`
	Unique  *flag `xml:"w:docPartUnique,omitempty"`
}

type sdtContent struct {
	Paragraphs []paragraph `xml:"w:p"`
}
