package browser

import (
	"errors"
	"testing"

	"github.com/go-rod/rod/lib/launcher/flags"

	"github.com/Nikita55612/BrowserBridge/browser/extension"
)

func TestResolvedExtensionsMandatoryFirst(t *testing.T) {
	helper, err := extension.Path()
	if err != nil {
		t.Fatalf("extension.Path: %v", err)
	}

	tests := []struct {
		name  string
		extra []string
	}{
		{"no caller extensions", nil},
		{"empty caller list", []string{}},
		{"one caller extension", []string{"/opt/ext/a"}},
		{"several, order preserved", []string{"/opt/ext/b", "/opt/ext/a", "/opt/ext/c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSessionConfig()
			cfg.Extensions = tt.extra
			exts, err := cfg.resolvedExtensions()
			if err != nil {
				t.Fatalf("resolvedExtensions: %v", err)
			}
			if len(exts) != len(tt.extra)+1 {
				t.Fatalf("got %d extensions, want %d", len(exts), len(tt.extra)+1)
			}
			if exts[0] != helper {
				t.Errorf("first extension = %q, want helper %q", exts[0], helper)
			}
			for i, e := range tt.extra {
				if exts[i+1] != e {
					t.Errorf("extension[%d] = %q, want %q", i+1, exts[i+1], e)
				}
			}
		})
	}
}

func TestDefaultArgs(t *testing.T) {
	if len(DefaultArgs) != 23 {
		t.Fatalf("DefaultArgs has %d entries, want 23", len(DefaultArgs))
	}
	if DefaultArgs[0] != "--disable-background-networking" {
		t.Errorf("first arg = %q", DefaultArgs[0])
	}
	cfg := DefaultSessionConfig()
	if &cfg.Args[0] == &DefaultArgs[0] {
		t.Error("DefaultSessionConfig must copy DefaultArgs, not alias it")
	}
}

func TestResolveHeadlessModes(t *testing.T) {
	tests := []struct {
		name string
		mode HeadlessMode
		want []string // nil means the headless flag must be absent
	}{
		{"headful", Headful, nil},
		{"legacy", HeadlessLegacy, []string{}},
		{"new", HeadlessNew, []string{"new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSessionConfig()
			cfg.Headless = tt.mode
			l, err := cfg.resolve()
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			got, ok := l.Flags[flags.Headless]
			if tt.want == nil {
				if ok {
					t.Fatalf("headless flag present: %v", got)
				}
				return
			}
			if !ok {
				t.Fatal("headless flag absent")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("headless values = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("headless values = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestResolveConditionalFlags(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionConfig)
		flag    flags.Flag
		present bool
	}{
		{"sandbox off by default", func(c *SessionConfig) {}, flags.NoSandbox, true},
		{"sandbox on removes no-sandbox", func(c *SessionConfig) { c.Sandbox = true }, flags.NoSandbox, false},
		{"incognito off by default", func(c *SessionConfig) {}, "incognito", false},
		{"incognito requested", func(c *SessionConfig) { c.Incognito = true }, "incognito", true},
		{"cache on by default", func(c *SessionConfig) {}, "disable-cache", false},
		{"cache disabled", func(c *SessionConfig) { c.CacheEnabled = false }, "disable-cache", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSessionConfig()
			tt.mutate(&cfg)
			l, err := cfg.resolve()
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if _, ok := l.Flags[tt.flag]; ok != tt.present {
				t.Errorf("flag %q present = %v, want %v", tt.flag, ok, tt.present)
			}
		})
	}
}

func TestResolveDirectMappings(t *testing.T) {
	cfg := DefaultSessionConfig()
	cfg.Executable = "/opt/chromium/chrome"
	cfg.UserDataDir = "/tmp/bb-profile"
	cfg.Port = 9321
	l, err := cfg.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got := l.Flags[flags.Bin]; len(got) != 1 || got[0] != "/opt/chromium/chrome" {
		t.Errorf("bin = %v", got)
	}
	if got := l.Flags[flags.UserDataDir]; len(got) != 1 || got[0] != "/tmp/bb-profile" {
		t.Errorf("user-data-dir = %v", got)
	}
	if got := l.Flags[flags.RemoteDebuggingPort]; len(got) != 1 || got[0] != "9321" {
		t.Errorf("remote-debugging-port = %v", got)
	}
	if got := l.Flags["lang"]; len(got) != 1 || got[0] != "en_US" {
		t.Errorf("lang = %v, configured args not applied", got)
	}
}

func TestResolveDropsDriverDefaults(t *testing.T) {
	cfg := DefaultSessionConfig()
	cfg.Args = []string{"--lang=en_US"}
	l, err := cfg.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// The driver's stock flag set includes these; with a caller-supplied
	// Args list they must be gone.
	for _, f := range []flags.Flag{"no-first-run", "disable-sync", "disable-default-apps"} {
		if _, ok := l.Flags[f]; ok {
			t.Errorf("driver default flag %q survived resolution", f)
		}
	}
	if _, ok := l.Flags["lang"]; !ok {
		t.Error("configured flag missing")
	}
}

func TestResolveBadFlag(t *testing.T) {
	cfg := DefaultSessionConfig()
	cfg.Args = []string{"--"}
	_, err := cfg.resolve()
	if err == nil {
		t.Fatal("resolve accepted a nameless flag")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
}
