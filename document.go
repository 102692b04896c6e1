package omnidocs

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Document represents a documentation page converted to Markdown.
type Document struct {
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// Heading returns the title, falling back to the source URL.
func (d *Document) Heading() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return d.SourceURL
}

// DocumentSeparator delimits pages in a combined document.
const DocumentSeparator = "\n\n---\n\n"

// CombineDocuments joins documents into one Markdown corpus in the given
// order. The corpus opens with a title and a numbered table of contents;
// each page follows under a "## N. Title" heading, and pages are separated
// by horizontal rules so page boundaries stay locatable.
func CombineDocuments(title string, docs []*Document) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString(DocumentSeparator)

	b.WriteString("## Table of Contents\n")
	for i, doc := range docs {
		heading := fmt.Sprintf("%d. %s", i+1, doc.Heading())
		fmt.Fprintf(&b, "\n%d. [%s](#%s)", i+1, doc.Heading(), HeadingAnchor(heading))
	}

	for i, doc := range docs {
		b.WriteString(DocumentSeparator)
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, doc.Heading())
		b.WriteString(strings.TrimSpace(doc.Content))
	}
	b.WriteString("\n")
	return b.String()
}

// HeadingAnchor returns the GitHub-style anchor of a Markdown heading:
// lowercase letters, digits, hyphens and underscores, with spaces turned
// into hyphens.
func HeadingAnchor(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(heading)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}
