package omnidocs

import (
	"net"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

// PageRef is a canonical absolute page URL. It is the identity key used to
// deduplicate discovered pages.
type PageRef string

// String returns the URL form of the reference.
func (r PageRef) String() string {
	return string(r)
}

// Canonicalize parses raw and returns its canonical reference: lowercase
// scheme and host, IDNA host, no default port, no query or fragment, and a
// cleaned path without a trailing slash ("/" for the site root).
// Canonicalize is idempotent.
func Canonicalize(raw string) (PageRef, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	return canonicalizeURL(u)
}

func canonicalizeURL(u *url.URL) (PageRef, error) {
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EINVALID, "unsupported URL %q: scheme must be http or https", u.String())
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", Errorf(EINVALID, "invalid URL %q: missing host", u.String())
	}
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}

	raw := canonicalPath(u.EscapedPath())
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", u.String(), err)
	}

	canonical := url.URL{
		Scheme:  scheme,
		Host:    host,
		Path:    decoded,
		RawPath: raw,
	}
	return PageRef(canonical.String()), nil
}

// canonicalPath re-encodes every segment of an escaped path in one form and
// then cleans it. An encoded slash stays inside its segment, so /a%2Fb and
// /a/b remain different pages.
func canonicalPath(escaped string) string {
	segs := strings.Split(escaped, "/")
	for i, seg := range segs {
		if s, err := url.PathUnescape(seg); err == nil {
			segs[i] = url.PathEscape(s)
		}
	}
	return cleanPath(strings.Join(segs, "/"))
}

// cleanPath collapses dot segments and duplicate slashes and drops the
// trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// Origin returns the scheme and host of the reference.
func (r PageRef) Origin() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Host returns the host of the reference, including a non-default port.
func (r PageRef) Host() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return u.Host
}

// escapedPath returns the path of the reference as it appears in the URL.
func (r PageRef) escapedPath() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return u.EscapedPath()
}

// Path returns the decoded path of the reference.
func (r PageRef) Path() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return u.Path
}

// Contains reports whether other shares the origin of r and lives under its
// path. Prefixes match on segment boundaries, so /guide contains
// /guide/intro but not /guidelines.
func (r PageRef) Contains(other PageRef) bool {
	if r.Origin() != other.Origin() {
		return false
	}
	prefix, p := r.escapedPath(), other.escapedPath()
	if prefix == "/" || p == prefix {
		return true
	}
	return strings.HasPrefix(p, prefix+"/")
}

// nonDocumentExts lists file extensions of linked assets that are not
// documentation pages.
var nonDocumentExts = map[string]bool{
	".pdf": true, ".zip": true, ".gz": true, ".tgz": true, ".tar": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".ico": true, ".mp4": true, ".webm": true, ".mp3": true,
	".css": true, ".js": true, ".json": true, ".xml": true, ".txt": true,
	".woff": true, ".woff2": true, ".ttf": true, ".epub": true,
}

// IsDocument reports whether the reference looks like a documentation page
// rather than a downloadable asset.
func (r PageRef) IsDocument() bool {
	return !nonDocumentExts[strings.ToLower(path.Ext(r.Path()))]
}

// InScope canonicalizes link and reports whether it is a documentation page
// under r. The zero reference accepts every document.
func (r PageRef) InScope(link string) (PageRef, bool) {
	ref, err := Canonicalize(link)
	if err != nil || !ref.IsDocument() {
		return "", false
	}
	if r != "" && !r.Contains(ref) {
		return "", false
	}
	return ref, true
}

// DiscoveryResult is the ordered, deduplicated list of pages found for one
// site. It is immutable once built.
type DiscoveryResult struct {
	base      PageRef
	pages     []PageRef
	framework Framework
	heuristic string
	fallback  bool
}

// NewDiscoveryResult builds the discovery result for base from the links of
// a navigation tree. Links are canonicalized, restricted to base's origin and
// path prefix, stripped of non-document assets and deduplicated keeping the
// first occurrence. When nav is nil or yields no page in scope, the result
// holds base alone.
func NewDiscoveryResult(base PageRef, nav *Navigation) *DiscoveryResult {
	r := &DiscoveryResult{base: base}
	if nav != nil {
		r.framework = nav.Framework
		r.heuristic = nav.Heuristic

		seen := make(map[PageRef]bool, len(nav.Links))
		for _, link := range nav.Links {
			ref, ok := base.InScope(link)
			if !ok || seen[ref] {
				continue
			}
			seen[ref] = true
			r.pages = append(r.pages, ref)
		}
	}

	if len(r.pages) == 0 {
		r.pages = []PageRef{base}
		r.fallback = true
	}
	return r
}

// Base returns the reference discovery started from.
func (r *DiscoveryResult) Base() PageRef {
	return r.base
}

// Pages returns a copy of the discovered references in navigation order.
func (r *DiscoveryResult) Pages() []PageRef {
	pages := make([]PageRef, len(r.pages))
	copy(pages, r.pages)
	return pages
}

// Len returns the number of discovered pages.
func (r *DiscoveryResult) Len() int {
	return len(r.pages)
}

// Framework returns the documentation framework detected on the base page.
func (r *DiscoveryResult) Framework() Framework {
	return r.framework
}

// Heuristic returns the name of the navigation heuristic that matched.
// It is empty when no navigation container was found.
func (r *DiscoveryResult) Heuristic() string {
	return r.heuristic
}

// Fallback reports whether the result is the single-page fallback.
func (r *DiscoveryResult) Fallback() bool {
	return r.fallback
}
