package mock

import (
	"context"

	"github.com/fwojciec/omnidocs"
)

var _ omnidocs.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of omnidocs.OutputStore.
type OutputStore struct {
	SavePageFn     func(ctx context.Context, index int, doc *omnidocs.Document) (string, error)
	SavePagePDFFn  func(ctx context.Context, index int, ref omnidocs.PageRef, pdf []byte) (string, error)
	SaveCombinedFn func(ctx context.Context, doc *omnidocs.Document) (string, error)
	SaveMergedFn   func(ctx context.Context, pdf []byte) (string, error)
}

func (s *OutputStore) SavePage(ctx context.Context, index int, doc *omnidocs.Document) (string, error) {
	return s.SavePageFn(ctx, index, doc)
}

func (s *OutputStore) SavePagePDF(ctx context.Context, index int, ref omnidocs.PageRef, pdf []byte) (string, error) {
	return s.SavePagePDFFn(ctx, index, ref, pdf)
}

func (s *OutputStore) SaveCombined(ctx context.Context, doc *omnidocs.Document) (string, error) {
	return s.SaveCombinedFn(ctx, doc)
}

func (s *OutputStore) SaveMerged(ctx context.Context, pdf []byte) (string, error) {
	return s.SaveMergedFn(ctx, pdf)
}
