// Package htmltomarkdown converts extracted page content to Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/omnidocs"
)

// Ensure Converter implements omnidocs.Converter at compile time.
var _ omnidocs.Converter = (*Converter)(nil)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with ATX headings and "-" bullets.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into cleaned Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", omnidocs.Errorf(omnidocs.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return Clean(result), nil
}

// Clean normalizes converted Markdown: no runs of blank lines, no blank
// lines just inside code fences, no trailing whitespace.
func Clean(md string) string {
	var out []string
	inFence := false
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				for len(out) > 0 && out[len(out)-1] == "" {
					out = out[:len(out)-1]
				}
			}
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence && line == "" && len(out) > 0 && strings.HasPrefix(strings.TrimSpace(out[len(out)-1]), "```") {
			continue
		}
		out = append(out, line)
	}

	md = excessBlankLines.ReplaceAllString(strings.Join(out, "\n"), "\n\n")
	return strings.TrimSpace(md)
}
