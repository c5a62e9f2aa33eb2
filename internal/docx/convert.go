package docx

import (
	"fmt"
	"strconv"

	"github.com/saasquatch/stencil-docx-docs/internal/docmodel"
)

// Page geometry in DXA (A4).
const (
	pageShortEdge = 11906
	pageLongEdge  = 16838
	marginSize    = 1440
	headerFooter  = 708
)

// ShadingFill is the background of shaded cells.
const ShadingFill = "EEEEEE"

// fieldPlaceholder is the cached page number shown before fields update.
const fieldPlaceholder = "1"

func headingStyleID(level int) string {
	return "Heading" + strconv.Itoa(level)
}

// convertBlocks maps model blocks to body elements.
func convertBlocks(blocks []docmodel.Block) ([]any, error) {
	out := make([]any, 0, len(blocks))
	for i, b := range blocks {
		el, err := convertBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, el)
	}
	return out, nil
}

func convertBlock(b docmodel.Block) (any, error) {
	switch b := b.(type) {
	case docmodel.Heading:
		return headingParagraph(b), nil
	case *docmodel.Heading:
		return headingParagraph(*b), nil
	case docmodel.Paragraph:
		return convertParagraph(b), nil
	case *docmodel.Paragraph:
		return convertParagraph(*b), nil
	case docmodel.Table:
		return convertTable(b), nil
	case *docmodel.Table:
		return convertTable(*b), nil
	case docmodel.PageBreak, *docmodel.PageBreak:
		return paragraph{Runs: []run{{Break: &lineBreak{Type: "page"}}}}, nil
	case docmodel.TableOfContents:
		return tableOfContents(b), nil
	case *docmodel.TableOfContents:
		return tableOfContents(*b), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBlock, b)
	}
}

func headingParagraph(h docmodel.Heading) paragraph {
	return paragraph{
		Props: &paragraphProps{Style: &val{Val: headingStyleID(h.Level)}},
		Runs:  []run{{Text: preserved(h.Text)}},
	}
}

func convertParagraph(p docmodel.Paragraph) paragraph {
	out := paragraph{}
	props := &paragraphProps{}
	if p.Style != "" {
		props.Style = &val{Val: p.Style}
	}
	switch p.Align {
	case docmodel.AlignRight:
		props.Align = &val{Val: "right"}
	case docmodel.AlignCenter:
		props.Align = &val{Val: "center"}
	}
	if *props != (paragraphProps{}) {
		out.Props = props
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, convertRun(r)...)
	}
	return out
}

// convertRun returns one XML run, or the five-run field sequence for
// computed fields.
func convertRun(r docmodel.Run) []run {
	props := runPropsFor(r)
	switch {
	case r.Break:
		return []run{{Props: props, Break: &lineBreak{}}}
	case r.Field == docmodel.FieldPageNumber:
		return fieldRuns(props, " PAGE ", fieldPlaceholder, false)
	default:
		return []run{{Props: props, Text: preserved(r.Text)}}
	}
}

func runPropsFor(r docmodel.Run) *runProps {
	p := &runProps{}
	if r.Code {
		p.Fonts = fontsFor(CodeFont)
	}
	if r.Bold {
		p.Bold, p.BoldCs = &flag{}, &flag{}
	}
	if r.Italic {
		p.Italic, p.ItalicCs = &flag{}, &flag{}
	}
	if r.Color != "" {
		p.Color = &val{Val: r.Color}
	}
	if *p == (runProps{}) {
		return nil
	}
	return p
}

// fieldRuns builds begin / instruction / separate / result / end.
func fieldRuns(props *runProps, instr, result string, dirty bool) []run {
	begin := &fieldChar{Type: "begin"}
	if dirty {
		begin.Dirty = "true"
	}
	return []run{
		{Props: props, FieldChar: begin},
		{Props: props, Instr: preserved(instr)},
		{Props: props, FieldChar: &fieldChar{Type: "separate"}},
		{Props: props, Text: preserved(result)},
		{Props: props, FieldChar: &fieldChar{Type: "end"}},
	}
}

func tocInstruction(t docmodel.TableOfContents) string {
	lo, hi := t.MinLevel, t.MaxLevel
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	instr := fmt.Sprintf(` TOC \o "%d-%d"`, lo, hi)
	if t.Hyperlink {
		instr += ` \h`
	}
	return instr + ` \z \u `
}

func tableOfContents(t docmodel.TableOfContents) contentControl {
	cc := contentControl{
		Props: sdtProps{DocPart: docPartObj{Gallery: val{Val: "Table of Contents"}, Unique: &flag{}}},
		Content: sdtContent{Paragraphs: []paragraph{{
			Runs: fieldRuns(nil, tocInstruction(t), "", true),
		}}},
	}
	if t.Title != "" {
		cc.Props.Alias = &val{Val: t.Title}
	}
	return cc
}

func convertTable(t docmodel.Table) table {
	cols := columnWidths(t)
	total := t.Width
	if total == 0 {
		for _, w := range cols {
			total += w
		}
	}

	out := table{
		Props: tableProps{
			Width:  dxa(total),
			Layout: &layout{Type: "fixed"},
		},
	}
	if t.Borderless {
		out.Props.Borders = noBorders(true)
	} else {
		out.Props.Borders = singleBorders(true)
	}
	for _, w := range cols {
		out.Grid.Columns = append(out.Grid.Columns, gridColumn{W: w})
	}
	for _, r := range t.Rows {
		row := tableRow{}
		if r.Header {
			row.Props = &rowProps{Header: &flag{}}
		}
		for i, c := range r.Cells {
			w := 0
			if i < len(cols) {
				w = cols[i]
			}
			row.Cells = append(row.Cells, convertCell(c, w))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// columnWidths returns the table's explicit widths, or splits Width evenly
// across the widest row when none are given.
func columnWidths(t docmodel.Table) []int {
	if len(t.ColumnWidths) > 0 {
		return t.ColumnWidths
	}
	n := 0
	for _, r := range t.Rows {
		n = max(n, len(r.Cells))
	}
	if n == 0 {
		return nil
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = t.Width / n
	}
	cols[n-1] += t.Width - (t.Width/n)*n
	return cols
}

func convertCell(c docmodel.Cell, w int) tableCell {
	props := &cellProps{}
	if w > 0 {
		props.Width = dxa(w)
	}
	if c.Borderless {
		props.Borders = noBorders(false)
	}
	if c.Shaded {
		props.Shading = &shading{Val: "clear", Color: "auto", Fill: ShadingFill}
	}
	if m := c.Margins; m != (docmodel.Margins{}) {
		props.Margins = &cellMargins{
			Top:    dxa(m.Top),
			Left:   dxa(m.Left),
			Bottom: dxa(m.Bottom),
			Right:  dxa(m.Right),
		}
	}

	cell := tableCell{}
	if *props != (cellProps{}) {
		cell.Props = props
	}
	for _, p := range c.Paragraphs {
		cell.Paragraphs = append(cell.Paragraphs, convertParagraph(p))
	}
	// A cell must hold at least one paragraph.
	if len(cell.Paragraphs) == 0 {
		cell.Paragraphs = []paragraph{{}}
	}
	return cell
}

func sectionPropsFor(s docmodel.Section, footerID string) *sectionProps {
	sp := &sectionProps{
		PageSize: pageSize{W: pageShortEdge, H: pageLongEdge},
		PageMargin: pageMargin{
			Top: marginSize, Right: marginSize, Bottom: marginSize, Left: marginSize,
			Header: headerFooter, Footer: headerFooter,
		},
	}
	if s.Orientation == docmodel.Landscape {
		sp.PageSize = pageSize{W: pageLongEdge, H: pageShortEdge, Orient: "landscape"}
	}
	if footerID != "" {
		sp.FooterRefs = []footerRef{{Type: "default", ID: footerID}}
	}
	return sp
}
