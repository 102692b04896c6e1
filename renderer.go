package omnidocs

import "context"

// Renderer loads pages in a browser session shared by the whole run.
// Implementations must be safe for concurrent use.
type Renderer interface {
	// Load navigates to the URL and waits for the page and its network
	// activity to settle. The context bounds the load only; the returned
	// page stays open until closed.
	Load(ctx context.Context, url string) (RenderedPage, error)

	// Close releases the browser session.
	Close() error
}

// RenderedPage is a loaded browser page.
type RenderedPage interface {
	// URL returns the page's current URL, after redirects.
	URL() string

	// HTML returns the rendered DOM serialized as HTML.
	HTML(ctx context.Context) (string, error)

	// PDF prints the page to PDF.
	PDF(ctx context.Context, opts *PDFOptions) ([]byte, error)

	// Close closes the page.
	Close() error
}
