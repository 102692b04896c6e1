package goquery_test

import (
	"testing"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/goquery"
	"github.com/fwojciec/omnidocs/mock"
	"github.com/stretchr/testify/assert"
)

// Ensure Extractor implements omnidocs.Extractor at compile time.
var _ omnidocs.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main and strips chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Install | Docs</title><style>body{}</style></head>
<body>
<header>Site header</header>
<nav><a href="/a">A</a></nav>
<main>
	<h1>Install</h1>
	<p>Run the installer.</p>
	<aside class="sidebar">On this page</aside>
	<script>track()</script>
</main>
<footer>Copyright</footer>
</body></html>`

		e := goquery.NewExtractor()
		frag := e.Extract(html)

		assert.Equal(t, "main", frag.Heuristic)
		assert.Equal(t, "Install | Docs", frag.Title)
		assert.Contains(t, frag.HTML, "<h1>Install</h1>")
		assert.Contains(t, frag.HTML, "Run the installer.")
		assert.NotContains(t, frag.HTML, "On this page")
		assert.NotContains(t, frag.HTML, "track()")
		assert.NotContains(t, frag.HTML, "Site header")
		assert.NotContains(t, frag.HTML, "Copyright")
		assert.False(t, frag.Empty())
	})

	t.Run("uses platform class when no semantic container exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="wrapper"><div class="markdown-body"><p>Content here</p></div></div></body></html>`

		e := goquery.NewExtractor()
		frag := e.Extract(html)

		assert.Equal(t, ".markdown-body", frag.Heuristic)
		assert.Equal(t, "<p>Content here</p>", frag.HTML)
	})

	t.Run("skips containers that only hold chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><nav><a href="/x">X</a></nav></main><article><p>Real text</p></article></body></html>`

		e := goquery.NewExtractor()
		frag := e.Extract(html)

		assert.Equal(t, "article", frag.Heuristic)
		assert.Contains(t, frag.HTML, "Real text")
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><h1>Hello</h1><p>Plain page</p></div><footer>f</footer></body></html>`

		e := goquery.NewExtractor()
		frag := e.Extract(html)

		assert.Equal(t, "body", frag.Heuristic)
		assert.Equal(t, "Hello", frag.Title)
		assert.Contains(t, frag.HTML, "Plain page")
		assert.NotContains(t, frag.HTML, "<footer>")
	})

	t.Run("consults fallback extractor before body", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.Extractor{
			ExtractFn: func(html string) *omnidocs.Fragment {
				return &omnidocs.Fragment{HTML: "<p>readable</p>", Text: "readable", Heuristic: "readability"}
			},
		}

		e := goquery.NewExtractor(goquery.WithFallback(fallback))
		frag := e.Extract(`<html><head><title>T</title></head><body><div>x</div></body></html>`)

		assert.Equal(t, "readability", frag.Heuristic)
		assert.Equal(t, "T", frag.Title)
	})

	t.Run("ignores empty fallback result", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.Extractor{
			ExtractFn: func(html string) *omnidocs.Fragment {
				return &omnidocs.Fragment{}
			},
		}

		e := goquery.NewExtractor(goquery.WithFallback(fallback))
		frag := e.Extract(`<html><body><div>body text</div></body></html>`)

		assert.Equal(t, "body", frag.Heuristic)
	})

	t.Run("reports empty pages", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		frag := e.Extract(`<html><body><nav><a href="/a">A</a></nav></body></html>`)

		assert.True(t, frag.Empty())
		assert.Equal(t, "Untitled", frag.Title)
	})
}
