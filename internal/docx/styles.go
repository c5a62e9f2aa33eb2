package docx

import (
	"encoding/xml"

	"github.com/saasquatch/stencil-docx-docs/internal/docmodel"
)

// CodeFont is used for runs marked as code.
const CodeFont = "Courier New"

type stylesPart struct {
	XMLName  xml.Name    `xml:"w:styles"`
	W        string      `xml:"xmlns:w,attr"`
	Defaults docDefaults `xml:"w:docDefaults"`
	Styles   []styleDef  `xml:"w:style"`
}

type docDefaults struct {
	Run runDefault `xml:"w:rPrDefault"`
}

type runDefault struct {
	Props runProps `xml:"w:rPr"`
}

// styleDef fields are declared in schema order.
type styleDef struct {
	Type        string          `xml:"w:type,attr"`
	Default     string          `xml:"w:default,attr,omitempty"`
	ID          string          `xml:"w:styleId,attr"`
	Name        val             `xml:"w:name"`
	BasedOn     *val            `xml:"w:basedOn,omitempty"`
	Next        *val            `xml:"w:next,omitempty"`
	QuickFormat *flag           `xml:"w:qFormat,omitempty"`
	PProps      *paragraphProps `xml:"w:pPr,omitempty"`
	RProps      *runProps       `xml:"w:rPr,omitempty"`
}

// newStyles converts model styles into styles.xml. The style with ID
// "Normal" becomes the default paragraph style; every other style is based
// on it. Document defaults take the Normal font and size.
func newStyles(styles []docmodel.Style) stylesPart {
	part := stylesPart{W: nsW}
	for _, s := range styles {
		if s.ID == normalStyleID {
			part.Defaults.Run.Props = runProps{
				Fonts:  fontsFor(s.Font),
				Size:   intVal(s.Size),
				SizeCs: intVal(s.Size),
			}
		}
	}
	for _, s := range styles {
		part.Styles = append(part.Styles, styleFor(s))
	}
	return part
}

const normalStyleID = "Normal"

func styleFor(s docmodel.Style) styleDef {
	def := styleDef{
		Type: "paragraph",
		ID:   s.ID,
		Name: val{Val: s.Name},
	}
	if s.ID == normalStyleID {
		def.Default = "1"
	} else {
		def.BasedOn = &val{Val: normalStyleID}
		def.Next = &val{Val: normalStyleID}
	}
	if s.QuickFormat {
		def.QuickFormat = &flag{}
	}

	pp := &paragraphProps{}
	if s.SpacingBefore != 0 || s.SpacingAfter != 0 {
		pp.Spacing = &spacing{Before: s.SpacingBefore, After: s.SpacingAfter}
	}
	if s.OutlineLevel > 0 {
		pp.KeepNext = &flag{}
		pp.OutlineLevel = intVal(s.OutlineLevel - 1)
	}
	if *pp != (paragraphProps{}) {
		def.PProps = pp
	}

	rp := &runProps{}
	if s.Font != "" {
		rp.Fonts = fontsFor(s.Font)
	}
	if s.Bold {
		rp.Bold, rp.BoldCs = &flag{}, &flag{}
	}
	if s.Size > 0 {
		rp.Size, rp.SizeCs = intVal(s.Size), intVal(s.Size)
	}
	if *rp != (runProps{}) {
		def.RProps = rp
	}
	return def
}
