package browser

import (
	"context"
	"time"

	"github.com/go-rod/rod"
)

// pollInterval is the gap between readiness probes. The driver's element
// lookup is a point-in-time query with no native "wait until" primitive;
// 10ms keeps the poll responsive without flooding the control channel.
const pollInterval = 10 * time.Millisecond

// ElementFinder is the single driver capability the readiness poller
// needs. *rod.Page satisfies it.
type ElementFinder interface {
	Has(selector string) (bool, *rod.Element, error)
}

// WaitForElement polls until selector exists on the page. Lookup errors
// count as "not there yet". It never gives up on its own: bound it with
// ctx, or use WaitForElementWithTimeout.
func WaitForElement(ctx context.Context, page ElementFinder, selector string) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if found, _, err := page.Has(selector); err == nil && found {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// WaitForElementWithTimeout polls for selector under an internal deadline.
// Expiry without a match yields *ElementTimeoutError. An element that is
// already present succeeds for any timeout, including zero.
func WaitForElementWithTimeout(page ElementFinder, selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := WaitForElement(ctx, page, selector); err != nil {
		return &ElementTimeoutError{Selector: selector, Timeout: timeout}
	}
	return nil
}
