// Package docxdocs turns web-component documentation metadata (the JSON
// emitted by a Stencil docs-json output target) into a Word document.
//
// # Quick Start
//
// Decode the metadata, build a generator and run it:
//
//	docs, err := docxdocs.DecodeDocsSet(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := docxdocs.NewGenerator(docxdocs.Options{
//	    OutDir: "docs",
//	    Title:  "Component Documentation",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := gen(ctx, docs)
//
// The result holds the written path and the assembled document model.
//
// # Document Layout
//
// Every document has exactly two sections:
//
//  1. A portrait cover with the title and a "Generated by <author> on
//     <date>" subtitle.
//  2. A landscape body with a table of contents, a page break and one block
//     group per component: a heading, its description, and props and slots
//     tables. A footer repeats the title next to the page number.
//
// Components and props carrying a doc tag listed in Options.ExcludeTags
// (default "undocumented") are left out. Slots are never filtered.
//
// # Configuration
//
// Options carries the document settings; zero values take the defaults.
// Functional options change how the generator runs:
//
//	gen, err := docxdocs.NewGenerator(opts,
//	    docxdocs.WithClock(func() time.Time { return fixed }),
//	    docxdocs.WithHTML(true),
//	    docxdocs.WithPDFRenderer(docxdocs.NewRodPDFRenderer(0)),
//	)
//
// With Options.Markdown set, documentation strings are parsed as Markdown
// and fenced code is coloured with the chroma style named by
// Options.CodeStyle.
//
// # Previews
//
// WithHTML writes a standalone HTML rendering of the same model next to the
// .docx file. WithPDFRenderer prints that page to PDF through headless
// Chrome (go-rod); the caller closes the renderer.
//
// # Document Model
//
// Assemble returns the intermediate model (sections, blocks, runs and named
// styles) without touching the filesystem. WithSerializer swaps the .docx
// writer for any type that turns that model into bytes.
//
// # Logging
//
// The package is silent unless a logger is installed with SetLogger.
package docxdocs
