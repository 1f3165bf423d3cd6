package browser

import "testing"

func TestCloseOnlyRunsOnce(t *testing.T) {
	// A Session that already went through Close must return immediately
	// instead of touching the released driver handle again.
	s := &Session{}
	s.closed.Store(true)
	s.Close()
}
