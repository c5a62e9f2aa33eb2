package docxdocs

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one renderer is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ErrPoolClosed is returned when rendering through a closed pool.
var ErrPoolClosed = errors.New("renderer pool is closed")

// RendererPool shares a bounded set of PDF renderers between concurrent
// generators. Each renderer owns one browser, so up to Size pages print in
// parallel. Renderers are created lazily on first acquire. Safe for
// concurrent use.
type RendererPool struct {
	size      int
	newFn     func() PDFRenderer
	renderers []PDFRenderer
	sem       chan PDFRenderer
	mu        sync.Mutex
	created   int
	closed    bool
}

// Compile-time check that RendererPool can be passed to WithPDFRenderer.
var _ PDFRenderer = (*RendererPool)(nil)

// NewRendererPool creates a pool of up to n go-rod renderers using the given
// page-load timeout.
func NewRendererPool(n int, timeout time.Duration) *RendererPool {
	return newRendererPool(n, func() PDFRenderer { return NewRodPDFRenderer(timeout) })
}

func newRendererPool(n int, newFn func() PDFRenderer) *RendererPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &RendererPool{
		size:      n,
		newFn:     newFn,
		renderers: make([]PDFRenderer, 0, n),
		sem:       make(chan PDFRenderer, n),
	}
}

// Acquire gets a renderer, creating one if the pool is not full. Blocks
// until one is released or ctx is done.
func (p *RendererPool) Acquire(ctx context.Context) (PDFRenderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return r, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		r := p.newFn()

		p.mu.Lock()
		p.renderers = append(p.renderers, r)
		p.mu.Unlock()
		return r, nil
	}
	p.mu.Unlock()

	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a renderer to the pool. Releasing into a closed pool is a
// no-op.
func (p *RendererPool) Release(r PDFRenderer) {
	if r == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- r
}

// RenderPDF prints through a pooled renderer.
func (p *RendererPool) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	r, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(r)
	return r.RenderPDF(ctx, htmlContent)
}

// Close releases every browser. Further acquires fail with ErrPoolClosed.
func (p *RendererPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	for range p.sem {
	}
	renderers := p.renderers
	p.mu.Unlock()

	var errs []error
	for _, r := range renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// ResolvePoolSize picks the renderer count: an explicit positive value
// wins, otherwise half of GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinPoolSize), MaxPoolSize)
}
