// Package browser manages the lifecycle of a headless-browser automation
// session: launching and tearing down the browser process, opening pages,
// navigating with bounded wait semantics, and mutating session-wide state
// (proxy, cookies, user agent, stealth posture) through the reserved
// control channel.
package browser

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	. "github.com/Nikita55612/BrowserBridge/internal/logging"
)

const (
	// processExitWait bounds how long Close waits for the browser
	// process to go away before falling back to quick re-checks.
	processExitWait = 2 * time.Second
	processExitPoll = 50 * time.Millisecond
	// exitRecheckAttempts is how often Close re-checks process liveness
	// after the bounded wait expired. Best effort only.
	exitRecheckAttempts = 4
)

// Session owns one running browser process, its driver connection and the
// background event drain. Launch creates it; Close destroys it. A closed
// Session cannot be relaunched.
//
// Operations issued sequentially by one caller execute in issue order
// against the driver. The Session does no cross-operation locking: callers
// that need strict interleaving (set proxy, then open, with nothing in
// between) must serialize themselves or use one Session per concern.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	cfg      SessionConfig

	timingsMu sync.RWMutex
	timings   Timings

	drainCancel context.CancelFunc
	drainDone   chan struct{}

	closed atomic.Bool
}

// Launch resolves cfg, starts the browser process and connects to it. The
// event drain goroutine starts here and runs until Close: the driver keeps
// feeding events over the control connection, and a client that stops
// consuming them stalls every subsequent call. After connecting, Launch
// sleeps the launch settle to absorb early-startup races.
//
// On failure nothing is owned and a *LaunchError (or *ConfigError) is
// returned; there is no Session to close.
func Launch(cfg SessionConfig) (*Session, error) {
	l, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	launchCtx, cancelLaunch := context.WithTimeout(context.Background(), cfg.LaunchTimeout)
	defer cancelLaunch()

	controlURL, err := l.Context(launchCtx).Launch()
	if err != nil {
		return nil, &LaunchError{Err: err}
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, &LaunchError{Err: err}
	}

	drainCtx, drainCancel := context.WithCancel(context.Background())
	s := &Session{
		browser:     b,
		launcher:    l,
		cfg:         cfg,
		timings:     cfg.Timings,
		drainCancel: drainCancel,
		drainDone:   make(chan struct{}),
	}
	go s.drainEvents(drainCtx)

	L_debug("browser: session launched", "controlURL", controlURL)
	time.Sleep(s.snapTimings().Launch)
	return s, nil
}

// LaunchDefault launches a Session with DefaultSessionConfig.
func LaunchDefault() (*Session, error) {
	return Launch(DefaultSessionConfig())
}

// drainEvents consumes the driver's event feed until ctx is cancelled.
// It must outlive every foreground operation on the Session.
func (s *Session) drainEvents(ctx context.Context) {
	defer close(s.drainDone)
	for range s.browser.Context(ctx).Event() {
	}
}

// snapTimings returns the settle policy as of this call. Every operation
// reads it exactly once when it starts, so a concurrent SetTimings never
// tears a single operation's durations.
func (s *Session) snapTimings() Timings {
	s.timingsMu.RLock()
	defer s.timingsMu.RUnlock()
	return s.timings
}

// SetTimings replaces the settle policy. Operations already in flight keep
// the policy they started with.
func (s *Session) SetTimings(t Timings) {
	s.timingsMu.Lock()
	s.timings = t
	s.timingsMu.Unlock()
}

// Close shuts the session down: graceful driver close, forceful kill as
// the fallback, a bounded wait for the process to exit, and, always last,
// cancellation of the event drain. The process state staying unknown does
// not fail the close. Call it exactly once per Session; it is safe even
// when the process already died, and it never hangs.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	if err := s.browser.Close(); err != nil {
		L_debug("browser: graceful close failed, killing process", "error", err)
		s.launcher.Kill()
	}

	exited := s.waitProcessExit(processExitWait)
	if !exited {
		for i := 0; i < exitRecheckAttempts; i++ {
			if !s.processAlive() {
				exited = true
				break
			}
		}
	}
	if !exited {
		L_warn("browser: process state unknown after close", "pid", s.launcher.PID())
	} else if s.cfg.UserDataDir == "" {
		// Throwaway profile: the launcher made it, the launcher removes it.
		s.launcher.Cleanup()
	}

	s.drainCancel()
	<-s.drainDone
	L_debug("browser: session closed")
}

// waitProcessExit polls process liveness until budget runs out.
func (s *Session) waitProcessExit(budget time.Duration) bool {
	deadline := time.Now().Add(budget)
	for time.Now().Before(deadline) {
		if !s.processAlive() {
			return true
		}
		time.Sleep(processExitPoll)
	}
	return !s.processAlive()
}

func (s *Session) processAlive() bool {
	pid := s.launcher.PID()
	if pid == 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
