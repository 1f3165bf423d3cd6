package browser

import "time"

// Timings are the settle durations used to absorb the driver's unsignaled
// internal asynchrony. The reserved control commands and the launch path
// have no acknowledgment beyond "the navigation failed at the network
// layer", so the session sleeps a fixed amount after each of them.
//
// All durations must be >= 0. A Session snapshots its Timings at the start
// of every operation; see Session.SetTimings.
type Timings struct {
	// Launch is slept after the browser process comes up, before Launch
	// returns control to the caller.
	Launch time.Duration
	// ProxySwitch is slept after a set_proxy control command.
	ProxySwitch time.Duration
	// Action is slept after the remaining control commands.
	Action time.Duration
	// PageWait bounds the load wait after a navigation is issued.
	PageWait time.Duration
}

// DefaultTimings returns the stock settle policy.
func DefaultTimings() Timings {
	return Timings{
		Launch:      280 * time.Millisecond,
		ProxySwitch: 180 * time.Millisecond,
		Action:      80 * time.Millisecond,
		PageWait:    700 * time.Millisecond,
	}
}
