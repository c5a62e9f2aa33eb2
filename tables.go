package docxdocs

import "math"

// LandscapeWidth is the usable width of a landscape page in DXA; every body
// table spans it.
const LandscapeWidth = 13768

// CellMargin is applied to each side of every table cell, in DXA.
const CellMargin = 64

// Column ratios of the body tables.
var (
	PropColumnRatios = []float64{0.25, 0.15, 0.6}
	SlotColumnRatios = []float64{0.2, 0.8}
)

var (
	propHeaders = []string{"Attribute Name", "Type", "Description"}
	slotHeaders = []string{"Name", "Description"}
)

var cellMargins = Margins{Top: CellMargin, Bottom: CellMargin, Left: CellMargin, Right: CellMargin}

// ScaleWidths converts ratios into integer widths of total. Each width is
// rounded to the nearest unit and the last column takes the remainder, so
// the widths always sum to total.
func ScaleWidths(total int, ratios []float64) []int {
	if len(ratios) == 0 {
		return nil
	}
	widths := make([]int, len(ratios))
	used := 0
	for i, r := range ratios[:len(ratios)-1] {
		widths[i] = int(math.Round(float64(total) * r))
		used += widths[i]
	}
	widths[len(widths)-1] = total - used
	return widths
}

// HeaderCell is a shaded cell with bold text.
func HeaderCell(text string) Cell {
	return Cell{
		Margins:    cellMargins,
		Shaded:     true,
		Paragraphs: []Paragraph{{Runs: []Run{{Text: text, Bold: true}}}},
	}
}

// DataCell is an unshaded cell with plain text.
func DataCell(text string) Cell {
	return richCell(Paragraph{Runs: []Run{PlainRun(text)}})
}

func richCell(p Paragraph) Cell {
	return Cell{Margins: cellMargins, Paragraphs: []Paragraph{p}}
}

// PropTable builds the props table of a component. Props whose doc tags hit
// the exclusion set are dropped; the header row is always present.
func PropTable(props []PropDoc, opts Options) Table {
	return newBuilder(opts.WithDefaults()).propTable(props)
}

// SlotTable builds the slots table of a component. Slots are never filtered.
func SlotTable(slots []SlotDoc) Table {
	return newBuilder(DefaultOptions()).slotTable(slots)
}

func (b *builder) propTable(props []PropDoc) Table {
	rows := []Row{headerRow(propHeaders)}
	for _, p := range props {
		if IsExcluded(p.DocsTags, b.exclude) {
			continue
		}
		name := p.Attr
		if name == "" {
			name = p.Name
		}
		rows = append(rows, Row{Cells: []Cell{
			DataCell(name),
			DataCell(p.Type),
			richCell(b.paragraph(p.Docs)),
		}})
	}
	return bodyTable(PropColumnRatios, rows)
}

func (b *builder) slotTable(slots []SlotDoc) Table {
	rows := []Row{headerRow(slotHeaders)}
	for _, s := range slots {
		rows = append(rows, Row{Cells: []Cell{
			DataCell(s.Name),
			richCell(b.paragraph(s.Docs)),
		}})
	}
	return bodyTable(SlotColumnRatios, rows)
}

func headerRow(labels []string) Row {
	row := Row{Header: true, Cells: make([]Cell, len(labels))}
	for i, l := range labels {
		row.Cells[i] = HeaderCell(l)
	}
	return row
}

func bodyTable(ratios []float64, rows []Row) Table {
	return Table{
		Width:        LandscapeWidth,
		ColumnWidths: ScaleWidths(LandscapeWidth, ratios),
		Rows:         rows,
	}
}
