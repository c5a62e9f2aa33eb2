package docxdocs

// Notes:
// - Assemble: cover and body sections, TOC preamble, component order,
//   exclusion at component level, footer layout
// - End-to-end scenarios run through the model only; serialization is
//   covered by internal/docx
// - The clock is injected, so the subtitle is asserted exactly

import (
	"reflect"
	"slices"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// TestAssemble - Document structure
// ---------------------------------------------------------------------------

func TestAssemble_Sections(t *testing.T) {
	t.Parallel()

	doc := Assemble(DocsSet{}, DefaultOptions(), fixedNow)

	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Sections))
	}
	cover, body := doc.Sections[0], doc.Sections[1]
	if cover.Orientation != Portrait {
		t.Errorf("cover orientation = %v, want portrait", cover.Orientation)
	}
	if body.Orientation != Landscape {
		t.Errorf("body orientation = %v, want landscape", body.Orientation)
	}
	if cover.Footer != nil {
		t.Error("cover should have no footer")
	}
	if body.Footer == nil {
		t.Fatal("body should have a footer")
	}
}

func TestAssemble_Cover(t *testing.T) {
	t.Parallel()

	doc := Assemble(DocsSet{}, DefaultOptions(), fixedNow)
	cover := doc.Sections[0].Blocks
	if len(cover) != 2 {
		t.Fatalf("got %d cover blocks, want 2", len(cover))
	}

	title := cover[0].(Paragraph)
	if title.Style != StyleTitle || title.Text() != "Component Documentation" {
		t.Errorf("title = %s %q", title.Style, title.Text())
	}
	sub := cover[1].(Paragraph)
	if sub.Style != StyleSubtitle || sub.Text() != "Generated by SaaSquatch on 10/15/2026" {
		t.Errorf("subtitle = %s %q", sub.Style, sub.Text())
	}
}

func TestAssemble_CustomOptions(t *testing.T) {
	t.Parallel()

	opts := Options{
		Title:      "Widget Reference",
		Author:     "Acme",
		TextFont:   "Georgia",
		DateFormat: "long",
	}
	doc := Assemble(DocsSet{}, opts, fixedNow)

	if got := doc.Sections[0].Blocks[1].(Paragraph).Text(); got != "Generated by Acme on October 15, 2026" {
		t.Errorf("subtitle = %q", got)
	}
	if doc.Title != "Widget Reference" || doc.Creator != "Acme" || !doc.Created.Equal(fixedNow) {
		t.Errorf("metadata = %q/%q/%v", doc.Title, doc.Creator, doc.Created)
	}
	for _, s := range doc.Styles {
		if s.Font != "Georgia" {
			t.Errorf("style %s font = %q", s.ID, s.Font)
		}
	}
	footer := doc.Sections[1].Footer.Blocks[0].(Table)
	if got := footer.Rows[0].Cells[0].Text(); got != "Widget Reference" {
		t.Errorf("footer title = %q", got)
	}
}

func TestAssemble_Footer(t *testing.T) {
	t.Parallel()

	doc := Assemble(DocsSet{}, DefaultOptions(), fixedNow)
	blocks := doc.Sections[1].Footer.Blocks
	if len(blocks) != 1 {
		t.Fatalf("got %d footer blocks, want 1", len(blocks))
	}
	tbl, ok := blocks[0].(Table)
	if !ok {
		t.Fatalf("footer block = %T, want Table", blocks[0])
	}
	if !tbl.Borderless || tbl.Width != LandscapeWidth || tbl.TotalWidth() != LandscapeWidth {
		t.Errorf("footer table = borderless %v width %d total %d", tbl.Borderless, tbl.Width, tbl.TotalWidth())
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("footer table shape = %d rows", len(tbl.Rows))
	}

	left, right := tbl.Rows[0].Cells[0], tbl.Rows[0].Cells[1]
	if left.Text() != DefaultTitle {
		t.Errorf("left cell = %q", left.Text())
	}
	if !left.Borderless || !right.Borderless {
		t.Error("footer cells should be borderless")
	}
	p := right.Paragraphs[0]
	if p.Align != AlignRight {
		t.Errorf("page number alignment = %v, want right", p.Align)
	}
	if len(p.Runs) != 1 || p.Runs[0].Field != FieldPageNumber {
		t.Errorf("page number runs = %+v", p.Runs)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Scenarios - End-to-end model scenarios
// ---------------------------------------------------------------------------

var tocPreamble = []string{"p:" + TOCTitle, "toc", "pagebreak"}

func TestAssemble_Scenarios(t *testing.T) {
	t.Parallel()

	hidden := []DocsTag{{Name: "undocumented"}}

	tests := []struct {
		name string
		docs DocsSet
		want []string
	}{
		{
			name: "single bare component",
			docs: DocsSet{Components: []ComponentDoc{{Tag: "x-bare"}}},
			want: []string{"h1:x-bare", "p:" + FallbackDescription},
		},
		{
			name: "excluded component contributes nothing",
			docs: DocsSet{Components: []ComponentDoc{
				{Tag: "x-hidden", Docs: "Hidden.", DocsTags: hidden, Props: []PropDoc{{Name: "p"}}},
				{Tag: "x-shown", Docs: "Shown."},
			}},
			want: []string{"h1:x-shown", "p:Shown."},
		},
		{
			name: "empty component list",
			docs: DocsSet{},
			want: nil,
		},
		{
			name: "input order preserved",
			docs: DocsSet{Components: []ComponentDoc{
				{Tag: "x-zeta", Docs: "Z."},
				{Tag: "x-alpha", Docs: "A."},
			}},
			want: []string{"h1:x-zeta", "p:Z.", "h1:x-alpha", "p:A."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Assemble(tt.docs, DefaultOptions(), fixedNow)
			want := append(slices.Clone(tocPreamble), tt.want...)
			if got := blockKinds(doc.Sections[1].Blocks); !slices.Equal(got, want) {
				t.Errorf("body = %v, want %v", got, want)
			}
		})
	}
}

func TestAssemble_ExcludedProp(t *testing.T) {
	t.Parallel()

	docs := DocsSet{Components: []ComponentDoc{{
		Tag: "x-props",
		Props: []PropDoc{
			{Name: "visible", Type: "string"},
			{Name: "hidden", Type: "string", DocsTags: []DocsTag{{Name: "undocumented"}}},
		},
	}}}
	doc := Assemble(docs, DefaultOptions(), fixedNow)

	body := doc.Sections[1].Blocks
	tbl, ok := body[len(body)-1].(Table)
	if !ok {
		t.Fatalf("last body block = %T, want Table", body[len(body)-1])
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(tbl.Rows))
	}
	if got := tbl.Rows[1].Cells[0].Text(); got != "visible" {
		t.Errorf("data row = %q, want visible", got)
	}
}

func TestAssemble_TOC(t *testing.T) {
	t.Parallel()

	doc := Assemble(DocsSet{}, DefaultOptions(), fixedNow)
	body := doc.Sections[1].Blocks

	caption := body[0].(Paragraph)
	if caption.Style != StyleHeading1NoOutline {
		t.Errorf("caption style = %s, want %s", caption.Style, StyleHeading1NoOutline)
	}
	toc := body[1].(TableOfContents)
	if !toc.Hyperlink || toc.MinLevel != 1 || toc.MaxLevel != 2 {
		t.Errorf("toc = %+v", toc)
	}
}

func TestAssemble_NoExclusion(t *testing.T) {
	t.Parallel()

	docs := DocsSet{Components: []ComponentDoc{
		{Tag: "x-hidden", Docs: "H.", DocsTags: []DocsTag{{Name: "undocumented"}}},
	}}
	doc := Assemble(docs, Options{ExcludeTags: []string{}}, fixedNow)

	want := append(slices.Clone(tocPreamble), "h1:x-hidden", "p:H.")
	if got := blockKinds(doc.Sections[1].Blocks); !slices.Equal(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Idempotent - Repeat runs
// ---------------------------------------------------------------------------

func TestAssemble_Idempotent(t *testing.T) {
	t.Parallel()

	docs := DocsSet{Components: []ComponentDoc{
		{
			Tag:   "x-a",
			Docs:  "A.",
			Props: []PropDoc{{Name: "p", Attr: "p-attr", Type: "number", Docs: "P."}},
			Slots: []SlotDoc{{Name: "s", Docs: "S."}},
		},
	}}

	// Two different clocks: everything but the subtitle must match.
	a := Assemble(docs, DefaultOptions(), fixedNow)
	b := Assemble(docs, DefaultOptions(), fixedNow.Add(72*time.Hour))

	if !reflect.DeepEqual(a.Sections[1], b.Sections[1]) {
		t.Error("body sections differ between runs")
	}
	if !reflect.DeepEqual(a.Sections[0].Blocks[0], b.Sections[0].Blocks[0]) {
		t.Error("cover titles differ between runs")
	}
	if !reflect.DeepEqual(a.Styles, b.Styles) {
		t.Error("styles differ between runs")
	}
}
