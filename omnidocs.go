// Package omnidocs converts documentation sites into a single ordered
// artifact. It renders a site's entry page, discovers every content page
// linked from its navigation tree, converts each page to Markdown and/or
// PDF, and merges the results in navigation order.
//
// This package contains domain types, pure domain functions and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/, goquery/,
// pdfcpu/).
package omnidocs
