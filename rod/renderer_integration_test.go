//go:build integration

package rod_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *rod.Session {
	t.Helper()
	session, err := rod.NewSession()
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestRenderer_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns script-rendered DOM", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<html><head><title>JS</title></head><body><main id="m"></main>
<script>document.getElementById("m").innerHTML = "<h1>Rendered by script</h1>";</script>
</body></html>`)
		}))
		defer srv.Close()

		r := rod.NewRenderer(newSession(t), rod.WithIdleTimeout(time.Second))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := r.Load(ctx, srv.URL)
		require.NoError(t, err)
		defer page.Close()

		html, err := page.HTML(ctx)
		require.NoError(t, err)
		assert.Contains(t, html, "Rendered by script")
		assert.Contains(t, page.URL(), srv.URL)
	})

	t.Run("prints a PDF", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body><p>Printable</p></body></html>`)
		}))
		defer srv.Close()

		r := rod.NewRenderer(newSession(t), rod.WithIdleTimeout(0))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := r.Load(ctx, srv.URL)
		require.NoError(t, err)
		defer page.Close()

		pdf, err := page.PDF(ctx, omnidocs.DefaultPDFOptions())
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("times out on a stalled server", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		r := rod.NewRenderer(newSession(t))
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		_, err := r.Load(ctx, srv.URL)

		require.Error(t, err)
		assert.Equal(t, omnidocs.ETIMEOUT, omnidocs.ErrorCode(err))
	})

	t.Run("fails after session close", func(t *testing.T) {
		t.Parallel()

		session := newSession(t)
		r := rod.NewRenderer(session)
		require.NoError(t, r.Close())

		_, err := r.Load(context.Background(), "http://127.0.0.1:1/")

		assert.Equal(t, omnidocs.ELOAD, omnidocs.ErrorCode(err))
	})
}
