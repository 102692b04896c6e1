// Package readability provides a content extractor backed by go-readability.
// It is used as the fallback when no content heuristic matches a page.
package readability

import (
	"strings"

	"github.com/fwojciec/omnidocs"
	"github.com/go-shiori/go-readability"
)

// HeuristicName is recorded on fragments produced by this extractor.
const HeuristicName = "readability"

// Ensure Extractor implements omnidocs.Extractor at compile time.
var _ omnidocs.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scores the document and returns the winning subtree. An empty
// fragment is returned when the input cannot be parsed or has no readable
// content.
func (e *Extractor) Extract(html string) *omnidocs.Fragment {
	if strings.TrimSpace(html) == "" {
		return &omnidocs.Fragment{}
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return &omnidocs.Fragment{}
	}

	return &omnidocs.Fragment{
		Title:     strings.TrimSpace(article.Title),
		HTML:      article.Content,
		Text:      strings.TrimSpace(article.TextContent),
		Heuristic: HeuristicName,
	}
}
