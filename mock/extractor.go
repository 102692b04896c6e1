package mock

import "github.com/fwojciec/omnidocs"

var _ omnidocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of omnidocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) *omnidocs.Fragment
}

func (e *Extractor) Extract(html string) *omnidocs.Fragment {
	return e.ExtractFn(html)
}
