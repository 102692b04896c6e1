package fs_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPageFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
		url   string
		want  string
	}{
		{"root page", 0, "https://docs.example.com/", "000_index"},
		{"nested path", 3, "https://docs.example.com/guide/setup", "003_guide_setup"},
		{"trailing slash", 12, "https://docs.example.com/api/", "012_api"},
		{"unsafe characters", 7, "https://docs.example.com/a%20b/c.d", "007_a_b_c_d"},
		{"wide index", 1234, "https://docs.example.com/x", "1234_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := omnidocs.Canonicalize(tt.url)
			require.NoError(t, err)

			assert.Equal(t, tt.want, fs.PageFileName(tt.index, ref))
		})
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello_world", fs.Slug("hello world!"))
	assert.Equal(t, "déjà_vu", fs.Slug("déjà vu"))
	assert.Equal(t, "", fs.Slug("--__--"))
	assert.Len(t, []rune(fs.Slug(strings.Repeat("a", 250))), 100)
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes parseable front matter, heading and body", func(t *testing.T) {
		t.Parallel()

		doc := &omnidocs.Document{
			Title:       "API: Reference",
			SourceURL:   "https://docs.example.com/api",
			Content:     "\nSome **content**.\n\n",
			ConvertedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		out, err := fs.FormatDocument(doc)
		require.NoError(t, err)

		parts := strings.SplitN(out, "---\n", 3)
		require.Len(t, parts, 3)
		assert.Empty(t, parts[0])

		var fm map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
		assert.Equal(t, "API: Reference", fm["title"])
		assert.Equal(t, "https://docs.example.com/api", fm["source"])
		assert.Equal(t, "2024-01-02T03:04:05Z", fm["converted"])

		assert.Equal(t, "\n# API: Reference\n\nSome **content**.\n", parts[2])
	})

	t.Run("untitled document falls back to source URL", func(t *testing.T) {
		t.Parallel()

		out, err := fs.FormatDocument(&omnidocs.Document{SourceURL: "https://docs.example.com/x"})

		require.NoError(t, err)
		assert.Contains(t, out, "# https://docs.example.com/x\n")
		assert.NotContains(t, out, "converted:")
	})
}
