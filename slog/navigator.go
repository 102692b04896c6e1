// Package slog provides log/slog decorators for the omnidocs services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/omnidocs"
)

// Ensure LoggingNavigator implements omnidocs.Navigator.
var _ omnidocs.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with logging of the detected framework
// and the heuristic that matched.
type LoggingNavigator struct {
	next   omnidocs.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next omnidocs.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// Navigation delegates to the wrapped navigator and logs the outcome.
func (n *LoggingNavigator) Navigation(html, pageURL string, scope omnidocs.PageRef) (nav *omnidocs.Navigation, err error) {
	defer func(begin time.Time) {
		framework, heuristic, links := "(unknown)", "", 0
		if nav != nil {
			if nav.Framework != omnidocs.FrameworkUnknown {
				framework = string(nav.Framework)
			}
			heuristic = nav.Heuristic
			links = len(nav.Links)
		}
		n.logger.Info("navigation",
			"url", pageURL,
			"scope", scope.String(),
			"framework", framework,
			"heuristic", heuristic,
			"links", links,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Navigation(html, pageURL, scope)
}
