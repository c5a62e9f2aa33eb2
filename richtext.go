package docxdocs

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// bullet prefixes unordered list items.
const bullet = "• "

// RichText renders Markdown documentation into formatted runs. Block
// boundaries become line breaks, so a whole docs string fits one paragraph
// or table cell.
type RichText struct {
	md    goldmark.Markdown
	style *chroma.Style
}

// NewRichText creates a renderer that colours fenced code with the named
// chroma style. Unknown styles fall back to chroma's default.
func NewRichText(codeStyle string) *RichText {
	return &RichText{
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		style: styles.Get(codeStyle),
	}
}

// Runs converts src to runs. Empty input yields no runs.
func (r *RichText) Runs(src string) []Run {
	source := []byte(src)
	root := r.md.Parser().Parse(text.NewReader(source))

	w := &runWriter{src: source, style: r.style, lineStart: true}
	_ = ast.Walk(root, w.walk)
	return w.finish()
}

// runWriter accumulates runs during an AST walk.
type runWriter struct {
	src       []byte
	style     *chroma.Style
	runs      []Run
	bold      int
	italic    int
	lineStart bool
}

func (w *runWriter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.HTMLBlock:
		if entering {
			w.lineBreak()
		}
		if hb, ok := n.(*ast.HTMLBlock); ok && entering {
			w.text(linesOf(hb.Lines(), w.src))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Heading:
		if entering {
			w.lineBreak()
			w.bold++
		} else {
			w.bold--
		}

	case *ast.ListItem:
		if entering {
			w.lineBreak()
			w.prefix(listPrefix(n))
		}

	case *ast.FencedCodeBlock:
		if entering {
			w.lineBreak()
			w.code(string(n.Language(w.src)), linesOf(n.Lines(), w.src))
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.lineBreak()
			w.code("", linesOf(n.Lines(), w.src))
		}
		return ast.WalkSkipChildren, nil

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.lineBreak()
		}

	case *east.TableCell:
		if entering && n.PreviousSibling() != nil {
			w.text(" | ")
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if n.Level >= 2 {
			w.bold += delta
		} else {
			w.italic += delta
		}

	case *ast.CodeSpan:
		if entering {
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(w.src))
				}
			}
			w.emit(Run{Text: b.String(), Code: true})
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			w.text(string(n.Label(w.src)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			w.text(string(n.Segment.Value(w.src)))
			switch {
			case n.HardLineBreak():
				w.forceBreak()
			case n.SoftLineBreak():
				w.text(" ")
			}
		}

	case *ast.String:
		if entering {
			w.text(string(n.Value))
		}
	}
	return ast.WalkContinue, nil
}

// text emits s with the current emphasis.
func (w *runWriter) text(s string) {
	if s == "" {
		return
	}
	w.emit(Run{Text: s})
}

// emit appends r with the current emphasis, merging into the previous run
// when the formatting matches.
func (w *runWriter) emit(r Run) {
	r.Bold = r.Bold || w.bold > 0
	r.Italic = r.Italic || w.italic > 0
	w.lineStart = false
	if n := len(w.runs); n > 0 {
		last := &w.runs[n-1]
		if !last.Break && last.Bold == r.Bold && last.Italic == r.Italic &&
			last.Code == r.Code && last.Color == r.Color {
			last.Text += r.Text
			return
		}
	}
	w.runs = append(w.runs, r)
}

// prefix writes a list marker and keeps the line open for the item's first
// block.
func (w *runWriter) prefix(s string) {
	w.text(s)
	w.lineStart = true
}

// lineBreak starts a new line unless already at the start of one.
func (w *runWriter) lineBreak() {
	if w.lineStart {
		return
	}
	w.forceBreak()
}

func (w *runWriter) forceBreak() {
	w.runs = append(w.runs, Run{Break: true})
	w.lineStart = true
}

// code emits a code block, coloured token by token.
func (w *runWriter) code(lang, src string) {
	src = strings.TrimSuffix(src, "\n")
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		w.codeText(src, Run{Code: true})
		return
	}
	for _, tok := range it.Tokens() {
		entry := w.style.Get(tok.Type)
		r := Run{Code: true, Bold: entry.Bold == chroma.Yes, Italic: entry.Italic == chroma.Yes}
		if entry.Colour.IsSet() {
			r.Color = strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
		}
		w.codeText(tok.Value, r)
	}
}

// codeText emits s with the formatting of tmpl, splitting on newlines.
func (w *runWriter) codeText(s string, tmpl Run) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.forceBreak()
		}
		if line != "" {
			r := tmpl
			r.Text = line
			w.emit(r)
		}
	}
}

// finish drops trailing breaks.
func (w *runWriter) finish() []Run {
	runs := w.runs
	for len(runs) > 0 && runs[len(runs)-1].Break {
		runs = runs[:len(runs)-1]
	}
	return runs
}

func listPrefix(item *ast.ListItem) string {
	depth := 0
	for p := item.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			depth++
		}
	}
	indent := strings.Repeat("  ", depth)

	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return indent + bullet
	}
	n := list.Start
	for s := item.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		n++
	}
	return indent + strconv.Itoa(n) + string(list.Marker) + " "
}

func linesOf(lines *text.Segments, src []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
