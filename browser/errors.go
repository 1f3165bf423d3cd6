package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
)

// ConfigError reports a session configuration that could not be resolved
// into a launchable spec. No partially resolved spec ever escapes.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("browser config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("browser config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LaunchError reports that the browser process failed to start or never
// produced a usable control connection.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string { return fmt.Sprintf("browser launch: %v", e.Err) }

func (e *LaunchError) Unwrap() error { return e.Err }

// NavigateError reports that a navigation request could not be issued.
// It is never returned for a successfully issued navigation that merely
// outlives the page wait budget.
type NavigateError struct {
	URL string
	Err error
}

func (e *NavigateError) Error() string { return fmt.Sprintf("navigate %s: %v", e.URL, e.Err) }

func (e *NavigateError) Unwrap() error { return e.Err }

// ElementTimeoutError reports that a readiness poll exhausted its budget
// without the selector ever matching.
type ElementTimeoutError struct {
	Selector string
	Timeout  time.Duration
}

func (e *ElementTimeoutError) Error() string {
	return fmt.Sprintf("element %q not found within %s", e.Selector, e.Timeout)
}

// SerializationError reports an identity-check payload that was absent or
// did not parse.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return fmt.Sprintf("myip payload: %v", e.Err) }

func (e *SerializationError) Unwrap() error { return e.Err }

// isNetworkLayerFailure reports whether err is the driver's network-layer
// navigation failure. A reserved control command resolves as exactly this
// class once the privileged handler has run, so inside the control channel
// it is the success acknowledgment; everywhere else it is a real error.
func isNetworkLayerFailure(err error) bool {
	var nav *rod.NavigationError
	return errors.As(err, &nav)
}
