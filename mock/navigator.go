package mock

import "github.com/fwojciec/omnidocs"

var _ omnidocs.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of omnidocs.Navigator.
type Navigator struct {
	NavigationFn func(html, pageURL string, scope omnidocs.PageRef) (*omnidocs.Navigation, error)
}

func (n *Navigator) Navigation(html, pageURL string, scope omnidocs.PageRef) (*omnidocs.Navigation, error) {
	return n.NavigationFn(html, pageURL, scope)
}
