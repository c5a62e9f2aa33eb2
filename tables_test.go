package docxdocs

// Notes:
// - ScaleWidths: widths always sum to the total
// - PropTable: filtering, attr vs name, missing fields
// - SlotTable: no filtering
// - every table has one repeating header row

import (
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestScaleWidths - Column width scaling
// ---------------------------------------------------------------------------

func TestScaleWidths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		total  int
		ratios []float64
		want   []int
	}{
		{name: "props", total: LandscapeWidth, ratios: PropColumnRatios, want: []int{3442, 2065, 8261}},
		{name: "slots", total: LandscapeWidth, ratios: SlotColumnRatios, want: []int{2754, 11014}},
		{name: "halves", total: LandscapeWidth, ratios: []float64{0.5, 0.5}, want: []int{6884, 6884}},
		{name: "single column", total: 100, ratios: []float64{1}, want: []int{100}},
		{name: "thirds", total: 100, ratios: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, want: []int{33, 33, 34}},
		{name: "no columns", total: 100, ratios: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScaleWidths(tt.total, tt.ratios)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ScaleWidths() = %v, want %v", got, tt.want)
			}
			if len(got) > 0 && sum(got) != tt.total {
				t.Errorf("sum = %d, want %d", sum(got), tt.total)
			}
		})
	}
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

// ---------------------------------------------------------------------------
// TestHeaderCell - Cell builders
// ---------------------------------------------------------------------------

func TestHeaderCell(t *testing.T) {
	t.Parallel()

	c := HeaderCell("Type")
	if !c.Shaded {
		t.Error("header cell should be shaded")
	}
	if c.Margins != (Margins{Top: 64, Bottom: 64, Left: 64, Right: 64}) {
		t.Errorf("Margins = %+v", c.Margins)
	}
	if len(c.Paragraphs) != 1 || len(c.Paragraphs[0].Runs) != 1 {
		t.Fatalf("Paragraphs = %+v", c.Paragraphs)
	}
	if r := c.Paragraphs[0].Runs[0]; r.Text != "Type" || !r.Bold {
		t.Errorf("run = %+v, want bold Type", r)
	}
}

func TestDataCell(t *testing.T) {
	t.Parallel()

	c := DataCell("string")
	if c.Shaded {
		t.Error("data cell should not be shaded")
	}
	if c.Margins != (Margins{Top: 64, Bottom: 64, Left: 64, Right: 64}) {
		t.Errorf("Margins = %+v", c.Margins)
	}
	if r := c.Paragraphs[0].Runs[0]; r.Text != "string" || r.Bold {
		t.Errorf("run = %+v, want plain string", r)
	}
}

// ---------------------------------------------------------------------------
// TestPropTable - Property tables
// ---------------------------------------------------------------------------

func TestPropTable(t *testing.T) {
	t.Parallel()

	props := []PropDoc{
		{Name: "headerText", Attr: "header-text", Type: "string", Docs: "Header."},
		{Name: "secret", Attr: "secret", Type: "boolean", DocsTags: []DocsTag{{Name: "undocumented"}}},
		{Name: "items", Type: "Item[]", Docs: "Items, property only."},
		{},
	}

	tbl := PropTable(props, DefaultOptions())

	if tbl.Width != LandscapeWidth || sum(tbl.ColumnWidths) != LandscapeWidth {
		t.Errorf("width %d, columns %v", tbl.Width, tbl.ColumnWidths)
	}
	if tbl.HeaderRows() != 1 || !tbl.Rows[0].Header {
		t.Errorf("HeaderRows() = %d, want 1", tbl.HeaderRows())
	}
	if got := rowTexts(tbl.Rows[0]); !slices.Equal(got, []string{"Attribute Name", "Type", "Description"}) {
		t.Errorf("header = %v", got)
	}

	wantRows := [][]string{
		{"header-text", "string", "Header."},
		{"items", "Item[]", "Items, property only."},
		{"", "", ""},
	}
	body := tbl.Rows[1:]
	if len(body) != len(wantRows) {
		t.Fatalf("got %d data rows, want %d", len(body), len(wantRows))
	}
	for i, want := range wantRows {
		if got := rowTexts(body[i]); !slices.Equal(got, want) {
			t.Errorf("row %d = %v, want %v", i, got, want)
		}
		if body[i].Header {
			t.Errorf("row %d marked as header", i)
		}
	}
}

func TestPropTable_CustomExclusion(t *testing.T) {
	t.Parallel()

	props := []PropDoc{
		{Name: "a", DocsTags: []DocsTag{{Name: "undocumented"}}},
		{Name: "b", DocsTags: []DocsTag{{Name: "internal"}}},
	}

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{name: "default", exclude: nil, want: []string{"b"}},
		{name: "custom", exclude: []string{"internal"}, want: []string{"a"}},
		{name: "both", exclude: []string{"internal", "undocumented"}, want: nil},
		{name: "disabled", exclude: []string{}, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl := PropTable(props, Options{ExcludeTags: tt.exclude})
			var got []string
			for _, r := range tbl.Rows[1:] {
				got = append(got, r.Cells[0].Text())
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSlotTable - Slot tables
// ---------------------------------------------------------------------------

func TestSlotTable(t *testing.T) {
	t.Parallel()

	tbl := SlotTable([]SlotDoc{
		{Name: "", Docs: "Default slot."},
		{Name: "footer", Docs: "Footer."},
	})

	if !slices.Equal(tbl.ColumnWidths, []int{2754, 11014}) {
		t.Errorf("ColumnWidths = %v", tbl.ColumnWidths)
	}
	if got := rowTexts(tbl.Rows[0]); !slices.Equal(got, []string{"Name", "Description"}) {
		t.Errorf("header = %v", got)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(tbl.Rows))
	}
	if got := rowTexts(tbl.Rows[2]); !slices.Equal(got, []string{"footer", "Footer."}) {
		t.Errorf("row = %v", got)
	}
}

func TestSlotTable_Empty(t *testing.T) {
	t.Parallel()

	tbl := SlotTable(nil)
	if len(tbl.Rows) != 1 || !tbl.Rows[0].Header {
		t.Errorf("empty slot table should hold only the header row, got %d rows", len(tbl.Rows))
	}
}

func rowTexts(r Row) []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text()
	}
	return out
}
