package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "headings use ATX style",
			html: `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`,
			want: []string{"# Title", "## Subtitle", "### Section"},
		},
		{
			name: "links keep their targets",
			html: `<p>See <a href="https://example.com/docs">the docs</a>.</p>`,
			want: []string{"[the docs](https://example.com/docs)"},
		},
		{
			name: "bullet lists use dashes",
			html: `<ul><li>Alpha</li><li>Beta</li></ul>`,
			want: []string{"- Alpha", "- Beta"},
		},
		{
			name: "ordered lists are numbered",
			html: `<ol><li>First</li><li>Second</li></ol>`,
			want: []string{"1. First", "2. Second"},
		},
		{
			name: "inline code and emphasis",
			html: `<p><strong>Run</strong> <code>make</code> <em>first</em>.</p>`,
			want: []string{"**Run**", "`make`", "*first*"},
		},
		{
			name: "fenced code keeps language hint",
			html: `<pre><code class="language-python">print("hi")</code></pre>`,
			want: []string{"```python", `print("hi")`},
		},
		{
			name: "tables become pipe tables",
			html: `<table><thead><tr><th>Flag</th><th>Default</th></tr></thead>` +
				`<tbody><tr><td>--timeout</td><td>60</td></tr></tbody></table>`,
			want: []string{"Flag", "Default", "--timeout", "|", "---"},
		},
		{
			name: "blockquotes",
			html: `<blockquote><p>Note this.</p></blockquote>`,
			want: []string{"> Note this."},
		},
	}

	conv := htmltomarkdown.NewConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := conv.Convert(tt.html)

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, md, w)
			}
		})
	}

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, omnidocs.EINVALID, omnidocs.ErrorCode(err))
	})

	t.Run("output has no surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert("<div>\n\n<p>Body</p>\n\n</div>")

		require.NoError(t, err)
		assert.Equal(t, "Body", md)
	})
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses runs of blank lines",
			in:   "one\n\n\n\n\ntwo",
			want: "one\n\ntwo",
		},
		{
			name: "strips trailing whitespace",
			in:   "one  \ntwo\t\n",
			want: "one\ntwo",
		},
		{
			name: "removes blank lines inside fence edges",
			in:   "```go\n\nx := 1\n\n```\n\nafter",
			want: "```go\nx := 1\n```\n\nafter",
		},
		{
			name: "keeps blank lines between code lines",
			in:   "```\na\n\nb\n```",
			want: "```\na\n\nb\n```",
		},
		{
			name: "keeps paragraph break after closing fence",
			in:   "```\ncode\n```\n\ntext",
			want: "```\ncode\n```\n\ntext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmltomarkdown.Clean(tt.in))
		})
	}
}
