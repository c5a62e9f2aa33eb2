//go:build integration

package docxdocs

// Notes:
// - Launches a real headless Chrome through go-rod; set ROD_BROWSER_BIN to
//   use a pre-installed browser
// - One renderer is shared by the subtests since it is not concurrency safe
// - The pool test runs two browsers in parallel

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testTimeout = 30 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestRodPDFRenderer_Integration(t *testing.T) {
	r := NewRodPDFRenderer(testTimeout)
	t.Cleanup(func() { _ = r.Close() })

	t.Run("preview page", func(t *testing.T) {
		doc := Assemble(previewDocs(), DefaultOptions(), fixedNow)
		page, err := RenderHTML(doc, DefaultOptions())
		if err != nil {
			t.Fatalf("RenderHTML() error = %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		data, err := r.RenderPDF(ctx, page)
		if err != nil {
			t.Fatalf("RenderPDF() error = %v", err)
		}
		assertValidPDF(t, data)
	})

	t.Run("expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		if _, err := r.RenderPDF(ctx, "<html></html>"); err == nil {
			t.Error("RenderPDF() should fail with an expired deadline")
		}
	})
}

func TestGenerate_PDFIntegration(t *testing.T) {
	r := NewRodPDFRenderer(testTimeout)
	t.Cleanup(func() { _ = r.Close() })

	dir := t.TempDir()
	res, err := Generate(context.Background(), previewDocs(), Options{OutDir: dir}, WithPDFRenderer(r))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.PDFPath != filepath.Join(dir, "docs.pdf") {
		t.Errorf("PDFPath = %q", res.PDFPath)
	}
	data, err := os.ReadFile(res.PDFPath)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	assertValidPDF(t, data)
}

func TestRendererPool_Integration(t *testing.T) {
	pool := NewRendererPool(2, testTimeout)
	t.Cleanup(func() { _ = pool.Close() })

	dir := t.TempDir()
	gen, err := NewGenerator(Options{OutDir: dir}, WithPDFRenderer(pool))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	// Two generators print through the same pool at once.
	errs := make(chan error, 2)
	for _, name := range []string{"a.docx", "b.docx"} {
		go func() {
			g, err := NewGenerator(Options{OutDir: dir, OutFile: name}, WithPDFRenderer(pool))
			if err != nil {
				errs <- err
				return
			}
			_, err = g(context.Background(), previewDocs())
			errs <- err
		}()
	}
	for range 2 {
		if err := <-errs; err != nil {
			t.Errorf("generate error = %v", err)
		}
	}
	for _, name := range []string{"a.pdf", "b.pdf"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading PDF: %v", err)
		}
		assertValidPDF(t, data)
	}

	if _, err := gen(context.Background(), previewDocs()); err != nil {
		t.Errorf("generate after concurrent use error = %v", err)
	}
}
