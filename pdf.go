package docxdocs

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
	"github.com/saasquatch/stencil-docx-docs/internal/process"
)

// PDFRenderer prints an HTML page to PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// pageRenderer abstracts printing a local HTML file so the browser can be
// swapped out in tests.
type pageRenderer interface {
	RenderFile(ctx context.Context, path string) ([]byte, error)
	Close() error
}

// Compile-time interface checks.
var (
	_ PDFRenderer  = (*RodPDFRenderer)(nil)
	_ pageRenderer = (*rodPage)(nil)
)

// DefaultPDFTimeout bounds page load when the context has no deadline.
const DefaultPDFTimeout = 30 * time.Second

// A4 in inches, with the same 1 inch margins as the .docx. Chrome rotates
// the sheet when printing in landscape.
const (
	pdfPaperWidth  = 8.27
	pdfPaperHeight = 11.69
	pdfMargin      = 1.0
)

// RodPDFRenderer prints HTML through headless Chrome driven by go-rod. The
// browser is launched lazily on first use; rod downloads Chromium if none is
// found. Not safe for concurrent use.
type RodPDFRenderer struct {
	page pageRenderer
}

// NewRodPDFRenderer creates a renderer. A non-positive timeout uses
// DefaultPDFTimeout.
func NewRodPDFRenderer(timeout time.Duration) *RodPDFRenderer {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &RodPDFRenderer{page: &rodPage{timeout: timeout}}
}

// RenderPDF stages htmlContent in a temporary file and prints it.
func (r *RodPDFRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	path, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return r.page.RenderFile(ctx, path)
}

// Close releases the browser.
func (r *RodPDFRenderer) Close() error {
	if r.page != nil {
		return r.page.Close()
	}
	return nil
}

// rodPage owns the browser connection and the launched process.
type rodPage struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

func (r *rodPage) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	// Pre-installed browser, typically in containers.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.stopProcess()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	Logger().Debug("browser connected", "url", u)
	return nil
}

// RenderFile opens path in a new tab and prints it.
func (r *rodPage) RenderFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// printOptions prints in landscape and lets the stylesheet's @page rules
// switch the cover back to portrait.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		Landscape:         true,
		PaperWidth:        floatPtr(pdfPaperWidth),
		PaperHeight:       floatPtr(pdfPaperHeight),
		MarginTop:         floatPtr(pdfMargin),
		MarginBottom:      floatPtr(pdfMargin),
		MarginLeft:        floatPtr(pdfMargin),
		MarginRight:       floatPtr(pdfMargin),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// Close releases the browser and kills whatever Chrome processes remain.
func (r *rodPage) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.stopProcess()
	return err
}

// stopProcess kills the browser's process group, then waits for it to exit
// and removes its user data directory.
func (r *rodPage) stopProcess() {
	if r.launcher == nil {
		return
	}
	l := r.launcher
	r.launcher = nil

	pid := l.PID()
	if pid <= 0 {
		return
	}
	process.KillProcessGroup(pid)
	l.Cleanup()
}
