package browser

import (
	"net/url"
	"time"

	. "github.com/Nikita55612/BrowserBridge/internal/logging"
)

// command is a reserved control operation carried over the navigation
// channel. These actions have no normal request/response path back to the
// caller: the helper extension performs the privileged change, the
// navigation itself predictably dies at the network layer, and the session
// reads that failure as the acknowledgment.
type command struct {
	name string
	arg  string
}

var (
	cmdResetProxy = command{name: "reset_proxy"}
	cmdCloseTabs  = command{name: "close_tabs"}
	cmdClearData  = command{name: "clear_data"}
)

func setProxyCommand(address string) command {
	return command{name: "set_proxy", arg: address}
}

// pseudoURL renders the command into its reserved URL form. The argument
// is path-escaped so arbitrary proxy addresses cannot smuggle in extra
// path segments.
func (c command) pseudoURL() string {
	if c.arg == "" {
		return "internal://" + c.name
	}
	return "internal://" + c.name + "/" + url.PathEscape(c.arg)
}

// dispatch sends a control command on a throwaway page and settles
// afterwards. Exactly the network-layer failure class counts as success;
// any other error means the control channel itself broke and propagates.
func (s *Session) dispatch(cmd command, settle time.Duration) error {
	page, err := s.NewPage()
	if err != nil {
		return err
	}
	defer func() {
		if err := page.Close(); err != nil {
			L_debug("browser: control page close failed", "command", cmd.name, "error", err)
		}
	}()

	if err := page.Navigate(cmd.pseudoURL()); err != nil && !isNetworkLayerFailure(err) {
		return err
	}
	L_trace("browser: control command dispatched", "command", cmd.name)
	time.Sleep(settle)
	return nil
}

// SetProxy routes all subsequent session traffic through address. The
// switch applies session-wide, so callers pairing it with a page open must
// issue the open afterwards (OpenWithParams does this).
func (s *Session) SetProxy(address string) error {
	return s.dispatch(setProxyCommand(address), s.snapTimings().ProxySwitch)
}

// ResetProxy restores direct connectivity.
func (s *Session) ResetProxy() error {
	return s.dispatch(cmdResetProxy, s.snapTimings().Action)
}

// CloseTabs closes every open tab in the session.
func (s *Session) CloseTabs() error {
	return s.dispatch(cmdCloseTabs, s.snapTimings().Action)
}

// ClearData clears the session's browsing data: cache, cookies and local
// storage.
func (s *Session) ClearData() error {
	return s.dispatch(cmdClearData, s.snapTimings().Action)
}
