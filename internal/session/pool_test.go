package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"quickcompare/internal/config"
)

func TestUserAgentRotationSet(t *testing.T) {
	agents := UserAgents()
	if len(agents) == 0 {
		t.Fatal("expected at least one user agent")
	}

	seen := make(map[string]bool)
	for _, ua := range agents {
		if !strings.Contains(ua, "Chrome/") {
			t.Fatalf("user agent should look like Chrome: %q", ua)
		}
		if seen[ua] {
			t.Fatalf("duplicate user agent: %q", ua)
		}
		seen[ua] = true
	}
}

func TestRandomUserAgentFromSet(t *testing.T) {
	p := NewPool(config.BrowserConfig{MaxPages: 1})

	valid := make(map[string]bool)
	for _, ua := range UserAgents() {
		valid[ua] = true
	}

	for i := 0; i < 50; i++ {
		if ua := p.randomUserAgent(); !valid[ua] {
			t.Fatalf("random user agent outside rotation set: %q", ua)
		}
	}
}

func TestNewPoolClampsMaxPages(t *testing.T) {
	p := NewPool(config.BrowserConfig{MaxPages: 0})
	if got := p.Stats().MaxPages; got != 1 {
		t.Fatalf("expected MaxPages clamped to 1, got %d", got)
	}
}

func TestAcquireAfterClose(t *testing.T) {
	p := NewPool(config.BrowserConfig{MaxPages: 1})
	p.Close()

	if _, err := p.Acquire(context.Background()); err == nil {
		t.Fatal("expected error acquiring from closed pool")
	}
}

func TestAcquireRespectsContextWhileExhausted(t *testing.T) {
	p := NewPool(config.BrowserConfig{MaxPages: 1})

	// Fill the only slot directly; no browser launch happens.
	p.slots <- struct{}{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Acquire(ctx)
	if err == nil {
		t.Fatal("expected error when pool is exhausted")
	}
	if time.Since(start) > time.Second {
		t.Fatal("acquire should abort promptly on context deadline")
	}
}

func TestStats(t *testing.T) {
	p := NewPool(config.BrowserConfig{MaxPages: 3})
	stats := p.Stats()
	if stats.MaxPages != 3 || stats.ActivePages != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
