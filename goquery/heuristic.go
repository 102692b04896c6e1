package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heuristic locates a region of a parsed page. Find returns an empty
// selection when the heuristic does not apply. Heuristics are tried in
// order and the first match wins, so platform support is added by
// inserting entries into a list.
type Heuristic struct {
	Name string
	Find func(doc *goquery.Document) *goquery.Selection
}

// FirstWithLinks returns a heuristic matching the first element for
// selector that contains at least one anchor with an href.
func FirstWithLinks(selector string) Heuristic {
	return Heuristic{
		Name: selector,
		Find: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
				return s.Find("a[href]").Length() > 0
			}).First()
		},
	}
}

// FirstWithText returns a heuristic matching the first element for
// selector that has visible text.
func FirstWithText(selector string) Heuristic {
	return Heuristic{
		Name: selector,
		Find: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
				return strings.TrimSpace(s.Text()) != ""
			}).First()
		},
	}
}
