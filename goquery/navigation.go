package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/omnidocs"
)

var _ omnidocs.Navigator = (*Navigator)(nil)

// DefaultNavHeuristics returns the generic navigation container heuristics
// in the order they are tried.
func DefaultNavHeuristics() []Heuristic {
	selectors := []string{
		"nav",
		`[role="navigation"]`,
		".sidebar",
		".nav-sidebar",
		".docs-sidebar",
		".toc",
		".table-of-contents",
		"aside",
		".menu",
		".navigation",
		".gitbook-sidebar",
		".book-summary",
	}
	heuristics := make([]Heuristic, 0, len(selectors))
	for _, s := range selectors {
		heuristics = append(heuristics, FirstWithLinks(s))
	}
	return heuristics
}

// DefaultFrameworkHeuristics returns the sidebar heuristic of each
// supported framework. A detected framework's heuristic is tried before
// the generic list, which would otherwise pick the top navbar.
func DefaultFrameworkHeuristics() map[omnidocs.Framework]Heuristic {
	return map[omnidocs.Framework]Heuristic{
		omnidocs.FrameworkDocusaurus: FirstWithLinks(".theme-doc-sidebar-container"),
		omnidocs.FrameworkMkDocs:     FirstWithLinks(".md-nav--primary"),
		omnidocs.FrameworkSphinx:     FirstWithLinks(".wy-menu-vertical, .sphinxsidebar, .bd-sidebar-primary"),
		omnidocs.FrameworkVitePress:  FirstWithLinks(".VPSidebar"),
		omnidocs.FrameworkVuePress:   FirstWithLinks(".sidebar-links"),
		omnidocs.FrameworkGitBook:    FirstWithLinks("[data-testid='space.sidebar']"),
		omnidocs.FrameworkNextra:     FirstWithLinks(".nextra-sidebar-container, .nextra-sidebar"),
	}
}

// Navigator finds the navigation tree of a rendered page.
type Navigator struct {
	detector   *Detector
	heuristics []Heuristic
	frameworks map[omnidocs.Framework]Heuristic
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithNavHeuristics replaces the generic heuristics.
func WithNavHeuristics(heuristics ...Heuristic) NavigatorOption {
	return func(n *Navigator) {
		n.heuristics = heuristics
	}
}

// WithFrameworkHeuristic sets the sidebar heuristic for a framework.
func WithFrameworkHeuristic(framework omnidocs.Framework, h Heuristic) NavigatorOption {
	return func(n *Navigator) {
		n.frameworks[framework] = h
	}
}

// NewNavigator creates a Navigator with the default heuristics.
func NewNavigator(opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		detector:   NewDetector(),
		heuristics: DefaultNavHeuristics(),
		frameworks: DefaultFrameworkHeuristics(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Navigation parses html rendered at pageURL and returns the links of the
// first navigation container linking to a document under scope, in document
// order. A top bar pointing only at the blog or the site root is passed
// over. Collapsed sections are part of the DOM and are included. Links
// resolve against pageURL, or against the page's <base href> when it
// declares one.
func (n *Navigator) Navigation(html string, pageURL string, scope omnidocs.PageRef) (*omnidocs.Navigation, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, omnidocs.Errorf(omnidocs.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, omnidocs.Errorf(omnidocs.EINVALID, "failed to parse HTML: %v", err)
	}
	base = documentBase(doc, base)

	framework := n.detector.DetectDocument(doc)
	for _, h := range n.candidates(framework) {
		container := h.Find(doc)
		if container.Length() == 0 {
			continue
		}
		links := collectLinks(container, base)
		if !linksInto(links, scope) {
			continue
		}
		return &omnidocs.Navigation{
			Framework: framework,
			Heuristic: h.Name,
			Links:     links,
		}, nil
	}

	return nil, omnidocs.Errorf(omnidocs.ENOTFOUND, "no navigation found on %s", pageURL)
}

// linksInto reports whether any link is a document page under scope.
func linksInto(links []string, scope omnidocs.PageRef) bool {
	for _, link := range links {
		if _, ok := scope.InScope(link); ok {
			return true
		}
	}
	return false
}

// candidates returns the heuristics to try for a framework.
func (n *Navigator) candidates(framework omnidocs.Framework) []Heuristic {
	h, ok := n.frameworks[framework]
	if !ok {
		return n.heuristics
	}
	return append([]Heuristic{h}, n.heuristics...)
}

// documentBase applies the document's <base href>, if any, to the page URL.
func documentBase(doc *goquery.Document, pageURL *url.URL) *url.URL {
	href, ok := doc.Find("head base[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return pageURL
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return pageURL
	}
	return pageURL.ResolveReference(ref)
}

// collectLinks returns the absolute URLs of the anchors inside container
// in document order. In-page anchors and non-HTTP links are skipped.
func collectLinks(container *goquery.Selection, base *url.URL) []string {
	var links []string
	container.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		links = append(links, resolved.String())
	})
	return links
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
