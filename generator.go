package docxdocs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
)

// GenerateFunc renders one docs set and writes the result.
type GenerateFunc func(ctx context.Context, docs DocsSet) (Result, error)

// Result describes one generation.
type Result struct {
	// Path of the written .docx file.
	Path string
	// HTMLPath and PDFPath are set when the previews were written.
	HTMLPath string
	PDFPath  string
	// Components is the number of components rendered after exclusion.
	Components int
	// Document is the model that was serialized.
	Document *Document
}

// Option configures a generator.
type Option func(*generator)

// WithClock sets the time source for the cover date and document metadata.
// Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("docxdocs: nil clock")
	}
	return func(g *generator) {
		g.now = now
	}
}

// WithSerializer replaces the .docx serializer.
func WithSerializer(s Serializer) Option {
	return func(g *generator) {
		if s != nil {
			g.serializer = s
		}
	}
}

// WithFileWriter replaces the filesystem writer.
func WithFileWriter(w FileWriter) Option {
	return func(g *generator) {
		if w != nil {
			g.files = w
		}
	}
}

// WithHTML also writes an HTML preview next to the .docx file.
func WithHTML(enabled bool) Option {
	return func(g *generator) {
		g.html = enabled
	}
}

// WithPDFRenderer also writes a PDF preview next to the .docx file, printed
// from the HTML preview by r. The caller owns r and must close it.
func WithPDFRenderer(r PDFRenderer) Option {
	return func(g *generator) {
		g.pdf = r
	}
}

type generator struct {
	opts       Options
	now        func() time.Time
	serializer Serializer
	files      FileWriter
	html       bool
	pdf        PDFRenderer
}

// NewGenerator applies defaults to opts, validates them, and returns the
// function that renders and writes documents.
func NewGenerator(opts Options, funcOpts ...Option) (GenerateFunc, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &generator{
		opts:       opts,
		now:        time.Now,
		serializer: NewDocxSerializer(),
		files:      osFileWriter{},
	}
	for _, o := range funcOpts {
		o(g)
	}
	return g.generate, nil
}

// Generate is a one-shot NewGenerator call.
func Generate(ctx context.Context, docs DocsSet, opts Options, funcOpts ...Option) (Result, error) {
	gen, err := NewGenerator(opts, funcOpts...)
	if err != nil {
		return Result{}, err
	}
	return gen(ctx, docs)
}

func (g *generator) generate(ctx context.Context, docs DocsSet) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log := Logger()

	doc := Assemble(docs, g.opts, g.now())
	res := Result{
		Path:       filepath.Join(g.opts.OutDir, g.opts.OutFile),
		Components: countComponents(docs, NewTagSet(g.opts.ExcludeTags)),
		Document:   doc,
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := g.serializer.Serialize(doc)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := g.files.EnsureDir(g.opts.OutDir); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCreateDir, err)
	}

	log.Info("writing .docx component documentation", "path", res.Path, "components", res.Components)
	if err := g.files.WriteFile(res.Path, data); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	if !g.html && g.pdf == nil {
		return res, nil
	}
	page, err := RenderHTML(doc, g.opts)
	if err != nil {
		return res, err
	}
	if g.html {
		res.HTMLPath = fileutil.ReplaceExt(res.Path, ".html")
		log.Info("writing HTML preview", "path", res.HTMLPath)
		if err := g.files.WriteFile(res.HTMLPath, []byte(page)); err != nil {
			return res, fmt.Errorf("%w: %v", ErrWriteFile, err)
		}
	}
	if g.pdf != nil {
		pdf, err := g.pdf.RenderPDF(ctx, page)
		if err != nil {
			return res, err
		}
		res.PDFPath = fileutil.ReplaceExt(res.Path, ".pdf")
		log.Info("writing PDF preview", "path", res.PDFPath)
		if err := g.files.WriteFile(res.PDFPath, pdf); err != nil {
			return res, fmt.Errorf("%w: %v", ErrWriteFile, err)
		}
	}
	return res, nil
}

func countComponents(docs DocsSet, exclude TagSet) int {
	n := 0
	for _, c := range docs.Components {
		if !IsExcluded(c.DocsTags, exclude) {
			n++
		}
	}
	return n
}
