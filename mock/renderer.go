package mock

import (
	"context"

	"github.com/fwojciec/omnidocs"
)

var (
	_ omnidocs.Renderer     = (*Renderer)(nil)
	_ omnidocs.RenderedPage = (*RenderedPage)(nil)
)

// Renderer is a mock implementation of omnidocs.Renderer.
type Renderer struct {
	LoadFn  func(ctx context.Context, url string) (omnidocs.RenderedPage, error)
	CloseFn func() error
}

func (r *Renderer) Load(ctx context.Context, url string) (omnidocs.RenderedPage, error) {
	return r.LoadFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

// RenderedPage is a mock implementation of omnidocs.RenderedPage.
// CloseFn may be left nil.
type RenderedPage struct {
	URLFn   func() string
	HTMLFn  func(ctx context.Context) (string, error)
	PDFFn   func(ctx context.Context, opts *omnidocs.PDFOptions) ([]byte, error)
	CloseFn func() error
}

func (p *RenderedPage) URL() string {
	return p.URLFn()
}

func (p *RenderedPage) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *RenderedPage) PDF(ctx context.Context, opts *omnidocs.PDFOptions) ([]byte, error) {
	return p.PDFFn(ctx, opts)
}

func (p *RenderedPage) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
