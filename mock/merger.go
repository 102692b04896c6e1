package mock

import "github.com/fwojciec/omnidocs"

var _ omnidocs.PDFMerger = (*PDFMerger)(nil)

// PDFMerger is a mock implementation of omnidocs.PDFMerger.
type PDFMerger struct {
	MergeFn func(pdfs [][]byte) (*omnidocs.MergeResult, error)
}

func (m *PDFMerger) Merge(pdfs [][]byte) (*omnidocs.MergeResult, error) {
	return m.MergeFn(pdfs)
}
