package rod

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fwojciec/omnidocs"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultIdleTimeout bounds the wait for network activity to settle after
// the load event.
const DefaultIdleTimeout = 5 * time.Second

// idleWindow is how long the network must stay quiet to count as idle.
const idleWindow = 500 * time.Millisecond

// Ensure Renderer implements omnidocs.Renderer at compile time.
var _ omnidocs.Renderer = (*Renderer)(nil)

// Renderer loads pages as tabs of a shared Session.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	session     *Session
	idleTimeout time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithIdleTimeout sets how long Load waits for the network to go idle.
// Zero skips the wait.
func WithIdleTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.idleTimeout = d
	}
}

// NewRenderer creates a Renderer on top of the given session.
func NewRenderer(session *Session, opts ...RendererOption) *Renderer {
	r := &Renderer{
		session:     session,
		idleTimeout: DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load opens a tab, navigates to url and waits for the load event followed
// by network idle. An idle wait that runs out is not an error.
func (r *Renderer) Load(ctx context.Context, url string) (omnidocs.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadError(ctx, url, err)
	}

	browser := r.session.Browser()
	if browser == nil {
		return nil, omnidocs.Errorf(omnidocs.ELOAD, "browser session is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, omnidocs.WrapError(omnidocs.ELOAD, err, "opening tab for %s", url)
	}

	p := page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		_ = page.Close()
		return nil, loadError(ctx, url, err)
	}
	if err := p.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, loadError(ctx, url, err)
	}

	if r.idleTimeout > 0 {
		idle := p.Timeout(r.idleTimeout)
		idle.WaitRequestIdle(idleWindow, nil, nil, nil)()
		idle.CancelTimeout()
	}
	if err := ctx.Err(); err != nil {
		_ = page.Close()
		return nil, loadError(ctx, url, err)
	}

	final := url
	if info, err := p.Info(); err == nil && info.URL != "" {
		final = info.URL
	}

	return &renderedPage{page: page, url: final}, nil
}

// Close closes the underlying session.
func (r *Renderer) Close() error {
	return r.session.Close()
}

// loadError classifies a failed load as a timeout, a cancellation or a
// plain load failure.
func loadError(ctx context.Context, url string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return omnidocs.WrapError(omnidocs.ETIMEOUT, err, "loading %s timed out", url)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return omnidocs.WrapError(omnidocs.ECANCELED, err, "loading %s canceled", url)
	default:
		return omnidocs.WrapError(omnidocs.ELOAD, err, "loading %s", url)
	}
}

// renderedPage holds the tab without a bound context so each call can
// apply its own.
type renderedPage struct {
	page *rod.Page
	url  string
}

func (p *renderedPage) URL() string { return p.url }

func (p *renderedPage) HTML(ctx context.Context) (string, error) {
	html, err := p.page.Context(ctx).HTML()
	if err != nil {
		return "", loadError(ctx, p.url, err)
	}
	return html, nil
}

func (p *renderedPage) PDF(ctx context.Context, opts *omnidocs.PDFOptions) ([]byte, error) {
	req, err := PrintOptions(opts)
	if err != nil {
		return nil, err
	}

	reader, err := p.page.Context(ctx).PDF(req)
	if err != nil {
		return nil, loadError(ctx, p.url, err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, omnidocs.WrapError(omnidocs.ELOAD, err, "reading PDF stream for %s", p.url)
	}
	return buf, nil
}

func (p *renderedPage) Close() error {
	return p.page.Close()
}
