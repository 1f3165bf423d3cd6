package browser

import (
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	. "github.com/Nikita55612/BrowserBridge/internal/logging"
)

const blankPage = "about:blank"

// ElementWait pairs a selector with the budget for its readiness poll.
type ElementWait struct {
	Selector string
	Timeout  time.Duration
}

// PageParams bundles the per-open options of OpenWithParams. The zero
// value opens a plain page with no proxy, no overrides and no settle.
type PageParams struct {
	// Proxy switches the session proxy before the page is created.
	Proxy string
	// WaitFor polls for a selector after navigation, advisory.
	WaitFor *ElementWait
	// UserAgent overrides the page's user agent.
	UserAgent string
	// Cookies are applied before navigation.
	Cookies []*proto.NetworkCookieParam
	// Stealth applies the anti-detection posture, advisory.
	Stealth bool
	// Settle is slept after navigation, unconditionally.
	Settle time.Duration
}

// NewPage opens a blank page. The caller owns it and closes it when done;
// the Session does not track open pages.
func (s *Session) NewPage() (*rod.Page, error) {
	return s.browser.Page(proto.TargetCreateTarget{URL: blankPage})
}

// OpenOnPage issues a navigation to url on an existing page, then waits
// for the load event under the page wait budget. Running out of budget is
// not an error: long redirects legitimately outlive it and the page stays
// usable. Only a failure to issue the navigation is reported.
func (s *Session) OpenOnPage(url string, page *rod.Page) error {
	if err := page.Navigate(url); err != nil {
		return &NavigateError{URL: url, Err: err}
	}
	if err := page.Timeout(s.snapTimings().PageWait).WaitLoad(); err != nil {
		L_debug("browser: load wait expired", "url", url, "error", err)
	}
	return nil
}

// Open opens url on a fresh page.
func (s *Session) Open(url string) (*rod.Page, error) {
	page, err := s.NewPage()
	if err != nil {
		return nil, err
	}
	if err := s.OpenOnPage(url, page); err != nil {
		return nil, err
	}
	return page, nil
}

// OpenWithDuration opens url and sleeps settle before returning, to let
// the page quiesce after navigation.
func (s *Session) OpenWithDuration(url string, settle time.Duration) (*rod.Page, error) {
	page, err := s.Open(url)
	if err != nil {
		return nil, err
	}
	time.Sleep(settle)
	return page, nil
}

// OpenWithParams is the richest open. The step order is load-bearing: the
// proxy must be active before the tab exists, and identity overrides must
// land before navigation. Stealth injection and the readiness wait are
// advisory; everything up to and including navigation issuance is not.
func (s *Session) OpenWithParams(url string, p PageParams) (*rod.Page, error) {
	if p.Proxy != "" {
		if err := s.SetProxy(p.Proxy); err != nil {
			return nil, err
		}
	}
	page, err := s.NewPage()
	if err != nil {
		return nil, err
	}
	if p.UserAgent != "" {
		override := proto.NetworkSetUserAgentOverride{UserAgent: p.UserAgent}
		if err := page.SetUserAgent(&override); err != nil {
			return nil, err
		}
	}
	if len(p.Cookies) > 0 {
		if err := page.SetCookies(p.Cookies); err != nil {
			return nil, err
		}
	}
	if p.Stealth {
		enableStealth(page)
	}
	if err := s.OpenOnPage(url, page); err != nil {
		return nil, err
	}
	time.Sleep(p.Settle)
	if p.WaitFor != nil {
		if err := WaitForElementWithTimeout(page, p.WaitFor.Selector, p.WaitFor.Timeout); err != nil {
			L_debug("browser: readiness wait expired", "selector", p.WaitFor.Selector, "error", err)
		}
	}
	return page, nil
}

// enableStealth injects the anti-detection script before the page
// navigates anywhere. Advisory: stealth is not essential to functional
// correctness, so a failed injection is logged and swallowed.
func enableStealth(page *rod.Page) {
	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		L_warn("browser: stealth injection failed", "error", err)
	}
}
