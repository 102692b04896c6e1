package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/omnidocs"
)

var _ omnidocs.Extractor = (*Extractor)(nil)

// chromeSelector matches page chrome removed from extracted content.
const chromeSelector = `nav, header, footer, aside, .sidebar, .navigation, .footer, [role="navigation"], script, style, noscript, template`

// DefaultContentHeuristics returns the main-content container heuristics
// in the order they are tried.
func DefaultContentHeuristics() []Heuristic {
	selectors := []string{
		"main",
		"article",
		`[role="main"]`,
		".theme-doc-markdown",
		".md-content",
		".rst-content",
		".markdown-section",
		".markdown-body",
		".VPDoc",
		".nextra-content",
		".content",
		".main-content",
		".documentation-content",
		".doc-content",
		"#content",
		".page-content",
		".post-content",
	}
	heuristics := make([]Heuristic, 0, len(selectors))
	for _, s := range selectors {
		heuristics = append(heuristics, FirstWithText(s))
	}
	return heuristics
}

// Extractor isolates the main content of a page with an ordered list of
// container heuristics. When none matches it asks the fallback extractor,
// if one is set, and finally uses the whole body.
type Extractor struct {
	heuristics []Heuristic
	fallback   omnidocs.Extractor
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContentHeuristics replaces the default content heuristics.
func WithContentHeuristics(heuristics ...Heuristic) ExtractorOption {
	return func(e *Extractor) {
		e.heuristics = heuristics
	}
}

// WithFallback sets the extractor consulted before falling back to the body.
func WithFallback(fallback omnidocs.Extractor) ExtractorOption {
	return func(e *Extractor) {
		e.fallback = fallback
	}
}

// NewExtractor creates an Extractor with the default heuristics.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{heuristics: DefaultContentHeuristics()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of html. It never fails.
func (e *Extractor) Extract(html string) *omnidocs.Fragment {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &omnidocs.Fragment{Title: "Untitled", HTML: html, Text: html, Heuristic: "raw"}
	}
	title := pageTitle(doc)

	for _, h := range e.heuristics {
		sel := h.Find(doc)
		if sel.Length() == 0 {
			continue
		}
		if frag := fragment(sel, h.Name, title); !frag.Empty() {
			return frag
		}
	}

	if e.fallback != nil {
		if frag := e.fallback.Extract(html); !frag.Empty() {
			if frag.Title == "" {
				frag.Title = title
			}
			return frag
		}
	}

	return fragment(doc.Find("body").First(), "body", title)
}

// fragment copies sel, strips chrome elements from the copy and returns
// its inner HTML.
func fragment(sel *goquery.Selection, heuristic, title string) *omnidocs.Fragment {
	content := sel.Clone()
	content.Find(chromeSelector).Remove()

	html, err := content.Html()
	if err != nil {
		html = ""
	}
	return &omnidocs.Fragment{
		Title:     title,
		HTML:      strings.TrimSpace(html),
		Text:      strings.TrimSpace(content.Text()),
		Heuristic: heuristic,
	}
}

// pageTitle returns the document title, the first h1, or "Untitled".
func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return "Untitled"
}
