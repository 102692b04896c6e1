package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/omnidocs"
)

// Ensure LoggingMerger implements omnidocs.PDFMerger.
var _ omnidocs.PDFMerger = (*LoggingMerger)(nil)

// LoggingMerger wraps a PDFMerger with logging.
type LoggingMerger struct {
	next   omnidocs.PDFMerger
	logger *slog.Logger
}

// NewLoggingMerger creates a new LoggingMerger.
func NewLoggingMerger(next omnidocs.PDFMerger, logger *slog.Logger) *LoggingMerger {
	return &LoggingMerger{next: next, logger: logger}
}

// Merge delegates to the wrapped merger.
func (m *LoggingMerger) Merge(pdfs [][]byte) (res *omnidocs.MergeResult, err error) {
	defer func(begin time.Time) {
		size, skipped := 0, 0
		if res != nil {
			size, skipped = len(res.PDF), len(res.Skipped)
		}
		m.logger.Info("merge",
			"inputs", len(pdfs),
			"skipped", skipped,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Merge(pdfs)
}
