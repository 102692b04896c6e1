package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/omnidocs"
)

// Ensure LoggingRenderer implements omnidocs.Renderer.
var _ omnidocs.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   omnidocs.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next omnidocs.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Load logs the URL being loaded and delegates to the wrapped renderer.
func (r *LoggingRenderer) Load(ctx context.Context, url string) (page omnidocs.RenderedPage, err error) {
	defer func(begin time.Time) {
		r.logger.Info("load",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	page, err = r.next.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	return &loggingPage{RenderedPage: page, logger: r.logger}, nil
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}

type loggingPage struct {
	omnidocs.RenderedPage
	logger *slog.Logger
}

func (p *loggingPage) PDF(ctx context.Context, opts *omnidocs.PDFOptions) (buf []byte, err error) {
	defer func(begin time.Time) {
		p.logger.Info("print",
			"url", p.URL(),
			"bytes", len(buf),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.RenderedPage.PDF(ctx, opts)
}
