package omnidocs

import "strings"

// Fragment is the main content isolated from a rendered page.
type Fragment struct {
	// Title is the page title.
	Title string

	// HTML is the main content with navigation, header, footer, scripts
	// and styles removed.
	HTML string

	// Text is the visible text of HTML, used to detect empty pages.
	Text string

	// Heuristic names the container heuristic that matched.
	Heuristic string
}

// Empty reports whether the fragment holds no visible text.
func (f *Fragment) Empty() bool {
	return f == nil || strings.TrimSpace(f.Text) == ""
}

// Extractor isolates the main content of a page. Extraction is best-effort
// and never fails: when no content heuristic matches, the page body is used.
type Extractor interface {
	Extract(html string) *Fragment
}
