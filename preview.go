package docxdocs

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/saasquatch/stencil-docx-docs/internal/assets"
)

// HTMLRenderer renders a Document as a standalone HTML page that mirrors the
// .docx layout: cover, table of contents, component sections and footer.
type HTMLRenderer struct {
	md        goldmark.Markdown
	codeStyle string
	font      string
}

// NewHTMLRenderer creates a renderer for the given options. Markdown sources
// kept on paragraphs are re-rendered with syntax highlighting in CodeStyle.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	opts = opts.WithDefaults()
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(opts.CodeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
	)
	return &HTMLRenderer{md: md, codeStyle: opts.CodeStyle, font: opts.TextFont}
}

// RenderHTML renders doc with a renderer built from opts.
func RenderHTML(doc *Document, opts Options) (string, error) {
	return NewHTMLRenderer(opts).Render(doc)
}

// Render returns the HTML page for doc.
func (r *HTMLRenderer) Render(doc *Document) (string, error) {
	screen, err := assets.LoadStyle(assets.StylePreview)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderHTML, err)
	}
	printCSS, err := assets.LoadStyle(assets.StylePrint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderHTML, err)
	}
	var codeCSS bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&codeCSS, styles.Get(r.codeStyle)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderHTML, err)
	}

	p := &htmlPage{r: r, headings: collectHeadings(doc)}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(doc.Title))
	fmt.Fprintf(&b, "<style>\n:root { --font-family: \"%s\", sans-serif; }\n%s\n%s</style>\n", cssString(r.font), screen, codeCSS.String())
	fmt.Fprintf(&b, "<style media=\"print\">\n%s</style>\n", printCSS)
	b.WriteString("</head>\n<body>\n")

	for i, s := range doc.Sections {
		class := "body"
		if i == 0 && len(doc.Sections) > 1 {
			class = "cover"
		}
		fmt.Fprintf(&b, "<section class=\"%s %s\">\n", class, s.Orientation)
		if err := p.blocks(&b, s.Blocks); err != nil {
			return "", err
		}
		b.WriteString("</section>\n")
		if s.Footer != nil {
			b.WriteString("<footer class=\"doc-footer\">\n")
			if err := p.blocks(&b, s.Footer.Blocks); err != nil {
				return "", err
			}
			b.WriteString("</footer>\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// previewHeading is one outlined heading with its anchor.
type previewHeading struct {
	id    string
	level int
	text  string
}

func collectHeadings(doc *Document) []previewHeading {
	var out []previewHeading
	for _, s := range doc.Sections {
		for _, blk := range s.Blocks {
			if h, ok := blk.(Heading); ok {
				out = append(out, previewHeading{
					id:    "h" + strconv.Itoa(len(out)+1),
					level: h.Level,
					text:  h.Text,
				})
			}
		}
	}
	return out
}

// htmlPage tracks state across one Render call.
type htmlPage struct {
	r        *HTMLRenderer
	headings []previewHeading
	next     int
}

func (p *htmlPage) blocks(b *strings.Builder, blocks []Block) error {
	for _, blk := range blocks {
		switch blk := blk.(type) {
		case Heading:
			id := ""
			if p.next < len(p.headings) {
				id = p.headings[p.next].id
				p.next++
			}
			level := min(max(blk.Level, 1), 6)
			fmt.Fprintf(b, "<h%d id=\"%s\">%s</h%d>\n", level, id, html.EscapeString(blk.Text), level)
		case Paragraph:
			if err := p.paragraph(b, blk); err != nil {
				return err
			}
		case Table:
			if err := p.table(b, blk); err != nil {
				return err
			}
		case PageBreak:
			b.WriteString("<div class=\"page-break\"></div>\n")
		case TableOfContents:
			p.toc(b, blk)
		}
	}
	return nil
}

func (p *htmlPage) paragraph(b *strings.Builder, para Paragraph) error {
	if para.Source != "" {
		var buf bytes.Buffer
		if err := p.r.md.Convert([]byte(para.Source), &buf); err != nil {
			return fmt.Errorf("%w: %v", ErrRenderHTML, err)
		}
		b.WriteString("<div class=\"docs\">\n")
		b.Write(buf.Bytes())
		b.WriteString("</div>\n")
		return nil
	}

	tag, class := "p", ""
	switch para.Style {
	case StyleTitle:
		tag, class = "h1", "title"
	case StyleSubtitle:
		class = "subtitle"
	case StyleHeading1NoOutline:
		tag, class = "h1", "no-outline"
	}
	attrs := ""
	if class != "" {
		attrs += " class=\"" + class + "\""
	}
	switch para.Align {
	case AlignRight:
		attrs += " style=\"text-align: right\""
	case AlignCenter:
		attrs += " style=\"text-align: center\""
	}
	fmt.Fprintf(b, "<%s%s>%s</%s>\n", tag, attrs, inlineHTML(para.Runs), tag)
	return nil
}

func inlineHTML(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		switch {
		case r.Break:
			b.WriteString("<br>")
			continue
		case r.Field == FieldPageNumber:
			b.WriteString("<span class=\"page-number\"></span>")
			continue
		}
		s := html.EscapeString(r.Text)
		if r.Code {
			s = "<code>" + s + "</code>"
		}
		if r.Italic {
			s = "<em>" + s + "</em>"
		}
		if r.Bold {
			s = "<strong>" + s + "</strong>"
		}
		if r.Color != "" {
			s = "<span style=\"color: #" + html.EscapeString(r.Color) + "\">" + s + "</span>"
		}
		b.WriteString(s)
	}
	return b.String()
}

func (p *htmlPage) table(b *strings.Builder, t Table) error {
	class := ""
	if t.Borderless {
		class = " class=\"borderless\""
	}
	fmt.Fprintf(b, "<table%s>\n", class)

	if total := t.TotalWidth(); total > 0 {
		b.WriteString("<colgroup>")
		for _, w := range t.ColumnWidths {
			fmt.Fprintf(b, "<col style=\"width: %.2f%%\">", float64(w)*100/float64(total))
		}
		b.WriteString("</colgroup>\n")
	}

	head := t.HeaderRows()
	if head > 0 {
		b.WriteString("<thead>\n")
	}
	for i, row := range t.Rows {
		if i == head {
			if head > 0 {
				b.WriteString("</thead>\n")
			}
			b.WriteString("<tbody>\n")
		}
		cellTag := "td"
		if row.Header {
			cellTag = "th"
		}
		b.WriteString("<tr>")
		for _, c := range row.Cells {
			fmt.Fprintf(b, "<%s>", cellTag)
			for _, para := range c.Paragraphs {
				if err := p.paragraph(b, para); err != nil {
					return err
				}
			}
			fmt.Fprintf(b, "</%s>", cellTag)
		}
		b.WriteString("</tr>\n")
	}
	switch {
	case head == len(t.Rows) && head > 0:
		b.WriteString("</thead>\n")
	case head < len(t.Rows):
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
	return nil
}

// toc renders the headings within the level range as a nested list.
func (p *htmlPage) toc(b *strings.Builder, t TableOfContents) {
	b.WriteString("<nav class=\"toc\">\n<ol>\n")
	depth := t.MinLevel
	open := false
	for _, h := range p.headings {
		if h.level < t.MinLevel || h.level > t.MaxLevel {
			continue
		}
		if h.level > depth {
			// Nest inside the open item.
			for depth < h.level {
				b.WriteString("<ol>\n")
				depth++
			}
		} else {
			for depth > h.level {
				b.WriteString("</li>\n</ol>\n")
				depth--
			}
			if open {
				b.WriteString("</li>\n")
			}
		}
		text := html.EscapeString(h.text)
		if t.Hyperlink {
			fmt.Fprintf(b, "<li><a href=\"#%s\">%s</a>", h.id, text)
		} else {
			fmt.Fprintf(b, "<li>%s", text)
		}
		open = true
	}
	for depth > t.MinLevel {
		b.WriteString("</li>\n</ol>\n")
		depth--
	}
	if open {
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n</nav>\n")
}

// cssString strips characters that could end a CSS string or rule.
func cssString(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '<', '>', ';', '{', '}', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
