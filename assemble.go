package docxdocs

import "time"

// Fixed body text.
const (
	TOCTitle = "Table of Contents"

	// TOC covers heading levels 1 through 2.
	tocMinLevel = 1
	tocMaxLevel = 2
)

// Subtitle is the cover attribution line.
func Subtitle(author, date string) string {
	return "Generated by " + author + " on " + date
}

// Assemble builds the whole document: a portrait cover section with title
// and subtitle, and a landscape body section holding the table of contents,
// a page break and one block group per non-excluded component, in input
// order. now stamps the subtitle and document metadata.
func Assemble(docs DocsSet, opts Options, now time.Time) *Document {
	opts = opts.WithDefaults()
	b := newBuilder(opts)
	log := Logger()

	cover := Section{
		Orientation: Portrait,
		Blocks: []Block{
			Paragraph{Style: StyleTitle, Runs: []Run{PlainRun(opts.Title)}},
			Paragraph{Style: StyleSubtitle, Runs: []Run{PlainRun(Subtitle(opts.Author, opts.subtitleDate(now)))}},
		},
	}

	body := []Block{
		Paragraph{Style: StyleHeading1NoOutline, Runs: []Run{PlainRun(TOCTitle)}},
		TableOfContents{Title: TOCTitle, Hyperlink: true, MinLevel: tocMinLevel, MaxLevel: tocMaxLevel},
		PageBreak{},
	}
	for _, c := range docs.Components {
		if IsExcluded(c.DocsTags, b.exclude) {
			log.Debug("skipping excluded component", "tag", c.Tag)
			continue
		}
		log.Debug("rendering component", "tag", c.Tag, "props", len(c.Props), "slots", len(c.Slots))
		body = append(body, b.component(c)...)
	}

	return &Document{
		Title:   opts.Title,
		Creator: opts.Author,
		Created: now,
		Styles:  Styles(opts.TextFont),
		Sections: []Section{
			cover,
			{
				Orientation: Landscape,
				Footer:      bodyFooter(opts.Title),
				Blocks:      body,
			},
		},
	}
}

// bodyFooter is a borderless two-cell row: title on the left, the current
// page number on the right.
func bodyFooter(title string) *Footer {
	cell := func(p Paragraph) Cell {
		return Cell{Borderless: true, Paragraphs: []Paragraph{p}}
	}
	return &Footer{Blocks: []Block{
		Table{
			Width:        LandscapeWidth,
			ColumnWidths: ScaleWidths(LandscapeWidth, []float64{0.5, 0.5}),
			Borderless:   true,
			Rows: []Row{{Cells: []Cell{
				cell(Paragraph{Runs: []Run{PlainRun(title)}}),
				cell(Paragraph{Align: AlignRight, Runs: []Run{{Field: FieldPageNumber}}}),
			}}},
		},
	}}
}
