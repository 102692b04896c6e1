// Package fs writes conversion outputs to the local filesystem.
package fs

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/omnidocs"
	"gopkg.in/yaml.v3"
)

const maxSlugLength = 100

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]+`)

// PageFileName returns the base name, without extension, of the per-page
// file at a discovery index: a zero-padded index followed by the page path.
// Example: 3, https://docs.example.com/guide/setup → 003_guide_setup
func PageFileName(index int, ref omnidocs.PageRef) string {
	slug := Slug(strings.ReplaceAll(strings.Trim(ref.Path(), "/"), "/", "_"))
	if slug == "" {
		slug = "index"
	}
	return fmt.Sprintf("%03d_%s", index, slug)
}

// Slug replaces runs of characters unsafe in file names with underscores
// and caps the length.
func Slug(s string) string {
	s = unsafeFileChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	if r := []rune(s); len(r) > maxSlugLength {
		s = strings.Trim(string(r[:maxSlugLength]), "_-")
	}
	return s
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Source    string `yaml:"source"`
	Converted string `yaml:"converted,omitempty"`
}

// FrontMatter renders the YAML front matter block of a document.
func FrontMatter(doc *omnidocs.Document) (string, error) {
	fm := frontMatter{Title: doc.Heading(), Source: doc.SourceURL}
	if !doc.ConvertedAt.IsZero() {
		fm.Converted = doc.ConvertedAt.UTC().Format(time.RFC3339)
	}

	out, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n", nil
}

// FormatDocument formats a page document as front matter, a top-level
// heading and the Markdown body.
func FormatDocument(doc *omnidocs.Document) (string, error) {
	fm, err := FrontMatter(doc)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fm)
	b.WriteString("\n# ")
	b.WriteString(doc.Heading())
	b.WriteString("\n\n")
	if body := strings.TrimSpace(doc.Content); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String(), nil
}
