package omnidocs

import (
	"context"
	"strings"
	"time"
)

// OutputFormat selects the artifacts a run produces.
type OutputFormat string

// Supported output formats.
const (
	FormatPDF      OutputFormat = "pdf"
	FormatMarkdown OutputFormat = "markdown"
	FormatBoth     OutputFormat = "both"
)

// ParseOutputFormat parses a case-insensitive output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatMarkdown, FormatBoth:
		return f, nil
	}
	return "", Errorf(EINVALID, "output format must be pdf, markdown or both, got %q", s)
}

// PDF reports whether the format produces a merged PDF.
func (f OutputFormat) PDF() bool {
	return f == FormatPDF || f == FormatBoth
}

// Markdown reports whether the format produces Markdown files.
func (f OutputFormat) Markdown() bool {
	return f == FormatMarkdown || f == FormatBoth
}

// Default run settings.
const (
	DefaultPageTimeout = 60 * time.Second
	DefaultConcurrency = 1
)

// Config holds the settings of a conversion run.
type Config struct {
	Format      OutputFormat
	OutputDir   string
	FinalName   string
	PDF         *PDFOptions
	PageTimeout time.Duration
	Concurrency int

	// KeepPagePDFs retains per-page PDFs next to the merged one.
	KeepPagePDFs bool
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if _, err := ParseOutputFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Format.PDF() && c.PDF != nil {
		if err := c.PDF.Validate(); err != nil {
			return err
		}
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}

// PageArtifact is the conversion output of one discovered page.
type PageArtifact struct {
	// Index is the page's position in the discovery result.
	Index int
	Ref   PageRef
	Title string

	// Document is set when Markdown was requested.
	Document *Document

	// PDF holds the page snapshot when PDF output was requested. It is
	// released once the merged PDF is written.
	PDF []byte

	// ContentHash identifies the extracted content.
	ContentHash string

	// Warning describes a recoverable problem, such as empty content.
	Warning string

	// Err is the failure reason; nil means the page converted.
	Err error

	Duration time.Duration
}

// OK reports whether the page converted.
func (a *PageArtifact) OK() bool {
	return a.Err == nil
}

// Run is one end-to-end conversion: its configuration, the pages it
// discovered, the per-page outcomes and the files it wrote.
type Run struct {
	ID        string
	Config    Config
	Discovery *DiscoveryResult
	Artifacts []*PageArtifact
	Outputs   []string

	// Warnings lists assembly problems that did not fail the run, such as
	// one of two requested formats failing to write.
	Warnings []string

	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of pages the run covered.
func (r *Run) Total() int {
	return len(r.Artifacts)
}

// Succeeded returns the number of pages that converted.
func (r *Run) Succeeded() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of pages that failed.
func (r *Run) Failed() int {
	return r.Total() - r.Succeeded()
}

// Failures returns the failed artifacts in discovery order.
func (r *Run) Failures() []*PageArtifact {
	var failed []*PageArtifact
	for _, a := range r.Artifacts {
		if !a.OK() {
			failed = append(failed, a)
		}
	}
	return failed
}

// Progress reports per-page progress during a run.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as pages are processed.
type ProgressFunc func(Progress)

// OutputStore persists run outputs and returns the written paths.
type OutputStore interface {
	// SavePage writes the Markdown file of the page at a discovery index.
	SavePage(ctx context.Context, index int, doc *Document) (string, error)

	// SavePagePDF writes the intermediate PDF of the page at a discovery index.
	SavePagePDF(ctx context.Context, index int, ref PageRef, pdf []byte) (string, error)

	// SaveCombined writes the combined Markdown document.
	SaveCombined(ctx context.Context, doc *Document) (string, error)

	// SaveMerged writes the merged PDF.
	SaveMerged(ctx context.Context, pdf []byte) (string, error)
}
