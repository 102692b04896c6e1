package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/omnidocs"
)

// Ensure LoggingExtractor implements omnidocs.Extractor.
var _ omnidocs.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the winning heuristic.
type LoggingExtractor struct {
	next   omnidocs.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next omnidocs.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) *omnidocs.Fragment {
	begin := time.Now()
	frag := e.next.Extract(html)
	e.logger.Info("extract",
		"title", frag.Title,
		"heuristic", frag.Heuristic,
		"chars", len(frag.Text),
		"empty", frag.Empty(),
		"duration", time.Since(begin),
	)
	return frag
}
