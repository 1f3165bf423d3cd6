package browser

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/go-rod/rod"
)

func TestCommandPseudoURL(t *testing.T) {
	tests := []struct {
		name string
		cmd  command
		want string
	}{
		{"reset proxy", cmdResetProxy, "internal://reset_proxy"},
		{"close tabs", cmdCloseTabs, "internal://close_tabs"},
		{"clear data", cmdClearData, "internal://clear_data"},
		{"plain proxy address", setProxyCommand("1.2.3.4:8080"), "internal://set_proxy/1.2.3.4:8080"},
		{
			"address with path characters",
			setProxyCommand("socks5://user:p/ss@host:1080"),
			"internal://set_proxy/" + url.PathEscape("socks5://user:p/ss@host:1080"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.pseudoURL(); got != tt.want {
				t.Errorf("pseudoURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkLayerClassification(t *testing.T) {
	navErr := &rod.NavigationError{Reason: "net::ERR_ABORTED"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"navigation failure", navErr, true},
		{"wrapped navigation failure", fmt.Errorf("dispatch: %w", navErr), true},
		{"other driver error", fmt.Errorf("websocket closed"), false},
		{"navigate issuance error", &NavigateError{URL: "internal://clear_data", Err: navErr}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNetworkLayerFailure(tt.err); got != tt.want {
				t.Errorf("isNetworkLayerFailure = %v, want %v", got, tt.want)
			}
		})
	}
}
