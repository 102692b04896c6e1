// Package pdfcpu assembles per-page PDFs into a single document with pdfcpu.
package pdfcpu

import (
	"bytes"
	"io"
	"sync"

	"github.com/fwojciec/omnidocs"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure Merger implements omnidocs.PDFMerger at compile time.
var _ omnidocs.PDFMerger = (*Merger)(nil)

var disableConfigDir sync.Once

// Merger concatenates PDFs in the given order.
type Merger struct {
	optimize bool
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithOptimize toggles the optimization pass over the merged file.
// Enabled by default.
func WithOptimize(v bool) MergerOption {
	return func(m *Merger) {
		m.optimize = v
	}
}

// NewMerger creates a Merger. pdfcpu's on-disk configuration directory is
// never read or created.
func NewMerger(opts ...MergerOption) *Merger {
	disableConfigDir.Do(api.DisableConfigDir)

	m := &Merger{optimize: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge validates every buffer, skips the ones pdfcpu cannot read and
// merges the rest. The result lists the skipped positions. It returns
// EASSEMBLY when nothing valid is left.
func (m *Merger) Merge(pdfs [][]byte) (*omnidocs.MergeResult, error) {
	res := &omnidocs.MergeResult{}
	var valid []io.ReadSeeker
	for i, pdf := range pdfs {
		if len(pdf) == 0 {
			res.Skipped = append(res.Skipped, i)
			continue
		}
		if err := api.Validate(bytes.NewReader(pdf), config()); err != nil {
			res.Skipped = append(res.Skipped, i)
			continue
		}
		valid = append(valid, bytes.NewReader(pdf))
	}
	if len(valid) == 0 {
		return res, omnidocs.Errorf(omnidocs.EASSEMBLY, "no valid PDF to merge out of %d", len(pdfs))
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(valid, &merged, false, config()); err != nil {
		return res, omnidocs.WrapError(omnidocs.EASSEMBLY, err, "merging %d PDFs", len(valid))
	}
	res.PDF = merged.Bytes()
	if !m.optimize {
		return res, nil
	}

	var optimized bytes.Buffer
	if err := api.Optimize(bytes.NewReader(merged.Bytes()), &optimized, config()); err == nil {
		res.PDF = optimized.Bytes()
	}
	return res, nil
}

// PageCount reports the number of pages in a PDF.
func PageCount(pdf []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdf), config())
	if err != nil {
		return 0, omnidocs.WrapError(omnidocs.EINVALID, err, "counting pages")
	}
	return n, nil
}

// config returns a fresh configuration per call since pdfcpu records the
// running command on it.
func config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
