// Package crawl discovers the pages of a documentation site and converts
// them to PDF and Markdown.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/omnidocs"
)

// Discoverer finds the ordered page list of a documentation site from the
// navigation tree of its start page.
type Discoverer struct {
	Renderer  omnidocs.Renderer
	Navigator omnidocs.Navigator

	// Timeout bounds rendering the start page. Zero means
	// omnidocs.DefaultPageTimeout.
	Timeout time.Duration
}

// Discover renders baseURL and returns the in-scope pages its navigation
// links to. A page without navigation, or whose navigation has nothing in
// scope, yields a result holding baseURL alone. Failing to render the start
// page is fatal and reported as EDISCOVERY.
func (d *Discoverer) Discover(ctx context.Context, baseURL string) (*omnidocs.DiscoveryResult, error) {
	base, err := omnidocs.Canonicalize(baseURL)
	if err != nil {
		return nil, err
	}

	lctx, cancel := context.WithTimeout(ctx, pageTimeout(d.Timeout))
	defer cancel()

	page, err := d.Renderer.Load(lctx, base.String())
	if err != nil {
		return nil, omnidocs.WrapError(omnidocs.EDISCOVERY, err, "rendering %s", base)
	}
	defer page.Close()

	html, err := page.HTML(lctx)
	if err != nil {
		return nil, omnidocs.WrapError(omnidocs.EDISCOVERY, err, "reading %s", base)
	}

	nav, err := d.Navigator.Navigation(html, page.URL(), base)
	switch {
	case omnidocs.ErrorCode(err) == omnidocs.ENOTFOUND:
		nav = nil
	case err != nil:
		return nil, omnidocs.WrapError(omnidocs.EDISCOVERY, err, "reading navigation of %s", base)
	}

	return omnidocs.NewDiscoveryResult(base, nav), nil
}

func pageTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return omnidocs.DefaultPageTimeout
	}
	return d
}
