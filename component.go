package docxdocs

// FallbackDescription stands in for a component without top-level docs.
const FallbackDescription = "No top-level documentation for this component."

// builder holds per-run state shared by the block builders.
type builder struct {
	opts    Options
	exclude TagSet
	rich    *RichText // nil renders docs as plain text
}

func newBuilder(opts Options) *builder {
	b := &builder{opts: opts, exclude: NewTagSet(opts.ExcludeTags)}
	if opts.Markdown {
		b.rich = NewRichText(opts.CodeStyle)
	}
	return b
}

// paragraph renders a documentation string.
func (b *builder) paragraph(src string) Paragraph {
	if b.rich == nil {
		return Paragraph{Runs: []Run{PlainRun(src)}}
	}
	return Paragraph{Runs: b.rich.Runs(src), Source: src}
}

// ComponentBlocks renders one component: its tag as a level-1 heading, its
// description, and the props and slots tables when the component declares
// any. Table presence follows the declared lists, so a component whose props
// are all excluded still gets a header-only props table.
func ComponentBlocks(c ComponentDoc, opts Options) []Block {
	return newBuilder(opts.WithDefaults()).component(c)
}

func (b *builder) component(c ComponentDoc) []Block {
	blocks := []Block{Heading{Level: 1, Text: c.Tag}}

	if c.Docs != "" {
		blocks = append(blocks, b.paragraph(c.Docs))
	} else {
		blocks = append(blocks, Paragraph{Runs: []Run{PlainRun(FallbackDescription)}})
	}

	if len(c.Props) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Props"}, b.propTable(c.Props))
	}
	if len(c.Slots) > 0 {
		blocks = append(blocks, Heading{Level: 2, Text: "Slots"}, b.slotTable(c.Slots))
	}
	return blocks
}
