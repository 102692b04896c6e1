package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/omnidocs"
)

// Ensure LoggingStore implements omnidocs.OutputStore.
var _ omnidocs.OutputStore = (*LoggingStore)(nil)

// LoggingStore wraps an OutputStore and logs every file written.
type LoggingStore struct {
	next   omnidocs.OutputStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next omnidocs.OutputStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

func (s *LoggingStore) SavePage(ctx context.Context, index int, doc *omnidocs.Document) (string, error) {
	path, err := s.next.SavePage(ctx, index, doc)
	s.log("page", path, len(doc.Content), err)
	return path, err
}

func (s *LoggingStore) SavePagePDF(ctx context.Context, index int, ref omnidocs.PageRef, pdf []byte) (string, error) {
	path, err := s.next.SavePagePDF(ctx, index, ref, pdf)
	s.log("page pdf", path, len(pdf), err)
	return path, err
}

func (s *LoggingStore) SaveCombined(ctx context.Context, doc *omnidocs.Document) (string, error) {
	path, err := s.next.SaveCombined(ctx, doc)
	s.log("combined", path, len(doc.Content), err)
	return path, err
}

func (s *LoggingStore) SaveMerged(ctx context.Context, pdf []byte) (string, error) {
	path, err := s.next.SaveMerged(ctx, pdf)
	s.log("merged", path, len(pdf), err)
	return path, err
}

func (s *LoggingStore) log(kind, path string, size int, err error) {
	s.logger.Info("write",
		"kind", kind,
		"path", path,
		"bytes", size,
		"err", err,
	)
}
