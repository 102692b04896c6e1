package mock

import "github.com/fwojciec/omnidocs"

var _ omnidocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of omnidocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
