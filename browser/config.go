package browser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"

	"github.com/Nikita55612/BrowserBridge/browser/extension"
)

// HeadlessMode selects how the browser window is run.
type HeadlessMode int

const (
	// Headful runs with a visible window.
	Headful HeadlessMode = iota
	// HeadlessLegacy uses the original --headless implementation.
	HeadlessLegacy
	// HeadlessNew uses Chromium's replacement headless mode.
	HeadlessNew
)

// DefaultArgs is the stock launch flag set: background networking, default
// apps, phishing detection, sync, translate UI, image loading and logging
// are all disabled so pages load fast and fingerprint small. Callers may
// replace the list wholesale via SessionConfig.Args.
var DefaultArgs = []string{
	"--disable-background-networking",
	"--enable-features=NetworkService,NetworkServiceInProcess",
	"--disable-client-side-phishing-detection",
	"--disable-default-apps",
	"--disable-dev-shm-usage",
	"--disable-breakpad",
	"--disable-features=TranslateUI",
	"--disable-prompt-on-repost",
	"--no-first-run",
	"--disable-sync",
	"--force-color-profile=srgb",
	"--enable-blink-features=IdleDetection",
	"--lang=en_US",
	"--no-sandbox",
	"--disable-gpu",
	"--disable-smooth-scrolling",
	"--blink-settings=imagesEnabled=false",
	"--enable-lazy-image-loading",
	"--disable-image-animation-resync",
	"--disable-features=TranslateUI",
	"--disable-translate",
	"--disable-logging",
	"--disable-histogram-customizer",
}

// SessionConfig declares how a Session is launched. The zero value is not
// usable; start from DefaultSessionConfig.
type SessionConfig struct {
	// Executable overrides the browser binary. Empty lets the driver find one.
	Executable string
	// Args is the complete Chromium flag list. The driver's own defaults
	// are dropped; only these flags apply.
	Args []string
	// Headless selects the window mode.
	Headless HeadlessMode
	// Sandbox enables the Chromium sandbox. Off by default so constrained
	// hosts (Docker, root) work out of the box.
	Sandbox bool
	// Extensions are appended after the mandatory helper extension, which
	// is always loaded first and cannot be removed.
	Extensions []string
	// Incognito opens the initial browser context in incognito mode.
	Incognito bool
	// UserDataDir sets the profile directory. Empty means a throwaway
	// profile that the Session removes on Close.
	UserDataDir string
	// Port is the control port. 0 lets the driver pick one.
	Port int
	// LaunchTimeout bounds the process launch.
	LaunchTimeout time.Duration
	// RequestTimeout bounds individual driver requests such as the
	// identity-check element lookup.
	RequestTimeout time.Duration
	// CacheEnabled keeps the on-disk cache.
	CacheEnabled bool
	// Timings is the settle policy the Session starts with.
	Timings Timings
}

// DefaultSessionConfig returns the stock configuration: headful, sandbox
// off, cache on, the hardened default flag list and default timings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Args:           append([]string(nil), DefaultArgs...),
		Headless:       Headful,
		Sandbox:        false,
		LaunchTimeout:  1500 * time.Millisecond,
		RequestTimeout: 2000 * time.Millisecond,
		CacheEnabled:   true,
		Timings:        DefaultTimings(),
	}
}

// resolvedExtensions returns the extension list with the embedded helper
// always first. Caller extensions follow in the order given.
func (c *SessionConfig) resolvedExtensions() ([]string, error) {
	helper, err := extension.Path()
	if err != nil {
		return nil, &ConfigError{Reason: "unpack helper extension", Err: err}
	}
	out := make([]string, 0, len(c.Extensions)+1)
	out = append(out, helper)
	out = append(out, c.Extensions...)
	return out, nil
}

// resolve maps the declarative config onto a driver launcher. The driver's
// own Chromium flag set is dropped so the configured Args are the only
// flags in play; the driver-internal bookkeeping flags survive.
func (c *SessionConfig) resolve() (*launcher.Launcher, error) {
	exts, err := c.resolvedExtensions()
	if err != nil {
		return nil, err
	}

	l := launcher.New()
	for name := range l.Flags {
		if strings.HasPrefix(string(name), "rod-") {
			continue
		}
		switch name {
		case flags.RemoteDebuggingPort, flags.UserDataDir:
			continue
		}
		l.Delete(name)
	}

	for _, arg := range c.Args {
		name, value, err := splitArg(arg)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("flag %q", arg), Err: err}
		}
		if value == "" {
			l.Set(name)
		} else {
			l.Set(name, value)
		}
	}

	l.Set("load-extension", strings.Join(exts, ","))

	switch c.Headless {
	case Headful:
		l.Headless(false)
	case HeadlessLegacy:
		l.Set(flags.Headless)
	case HeadlessNew:
		l.Set(flags.Headless, "new")
	}

	if c.Incognito {
		l.Set("incognito")
	}
	if !c.Sandbox {
		l.Set(flags.NoSandbox)
	}
	if !c.CacheEnabled {
		l.Set("disable-cache")
	}
	if c.UserDataDir != "" {
		l.UserDataDir(c.UserDataDir)
	}
	if c.Executable != "" {
		l.Bin(c.Executable)
	}
	if c.Port != 0 {
		l.Set(flags.RemoteDebuggingPort, strconv.Itoa(c.Port))
	}

	return l, nil
}

// splitArg turns a raw "--name=value" Chromium flag into launcher form.
func splitArg(arg string) (flags.Flag, string, error) {
	trimmed := strings.TrimPrefix(arg, "--")
	name, value, _ := strings.Cut(trimmed, "=")
	if name == "" {
		return "", "", fmt.Errorf("flag has no name")
	}
	return flags.Flag(name), value, nil
}
