package browser

import "testing"

func TestRandomUserAgentMembership(t *testing.T) {
	table := make(map[string]bool, len(UserAgents))
	for _, ua := range UserAgents {
		table[ua] = true
	}
	for i := 0; i < 5000; i++ {
		if ua := RandomUserAgent(); !table[ua] {
			t.Fatalf("returned value outside the table: %q", ua)
		}
	}
}

func TestRandomUserAgentRoughlyUniform(t *testing.T) {
	const draws = 20000
	counts := make(map[string]int, len(UserAgents))
	for i := 0; i < draws; i++ {
		counts[RandomUserAgent()]++
	}
	if len(counts) != len(UserAgents) {
		t.Fatalf("saw %d distinct agents, want %d", len(counts), len(UserAgents))
	}
	expected := draws / len(UserAgents)
	for ua, n := range counts {
		if n < expected/3 || n > expected*3 {
			t.Errorf("agent %q drawn %d times, expected around %d", ua, n, expected)
		}
	}
}

func TestUserAgentTableShape(t *testing.T) {
	if len(UserAgents) != 20 {
		t.Fatalf("table has %d entries, want 20", len(UserAgents))
	}
	for i, ua := range UserAgents {
		if ua == "" {
			t.Errorf("entry %d is empty", i)
		}
	}
}
