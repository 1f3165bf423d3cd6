package browser

import (
	"testing"
	"time"
)

func TestDefaultTimings(t *testing.T) {
	d := DefaultTimings()
	if d.Launch != 280*time.Millisecond {
		t.Errorf("Launch = %s", d.Launch)
	}
	if d.ProxySwitch != 180*time.Millisecond {
		t.Errorf("ProxySwitch = %s", d.ProxySwitch)
	}
	if d.Action != 80*time.Millisecond {
		t.Errorf("Action = %s", d.Action)
	}
	if d.PageWait != 700*time.Millisecond {
		t.Errorf("PageWait = %s", d.PageWait)
	}
}

func TestSetTimingsSnapshotIsolation(t *testing.T) {
	s := &Session{timings: DefaultTimings()}

	snap := s.snapTimings()
	replacement := Timings{
		Launch:      time.Second,
		ProxySwitch: time.Second,
		Action:      time.Second,
		PageWait:    time.Second,
	}
	s.SetTimings(replacement)

	if snap.ProxySwitch != 180*time.Millisecond {
		t.Error("snapshot taken before SetTimings must keep the old policy")
	}
	if got := s.snapTimings(); got != replacement {
		t.Errorf("snapTimings after replace = %+v", got)
	}
}
