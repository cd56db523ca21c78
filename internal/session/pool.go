package session

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"quickcompare/internal/config"
)

// userAgents is the fixed rotation set applied to new contexts.
var userAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// fingerprintJS hides the usual automation tells beyond what the stealth
// page already covers: plugin list, languages and the chrome runtime object.
const fingerprintJS = `() => {
	Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
	Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
	window.chrome = window.chrome || { runtime: {} };
}`

// PoolStats is a snapshot of the pool's current usage.
type PoolStats struct {
	MaxPages    int `json:"maxPages"`
	ActivePages int `json:"activePages"`
}

// Pool owns the single shared headless browser process and hands out
// isolated per-task browsing contexts. The browser is expensive to start,
// so it is launched lazily on first acquire; contexts are cheap. Safe for
// concurrent use; no external locking is needed around context creation.
type Pool struct {
	cfg   config.BrowserConfig
	slots chan struct{}

	mu      sync.Mutex
	browser *rod.Browser
	closed  bool

	active atomic.Int32
	rng    *rand.Rand
	rngMu  sync.Mutex
}

// NewPool creates a pool; the browser process starts on first Acquire.
func NewPool(cfg config.BrowserConfig) *Pool {
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	return &Pool{
		cfg:   cfg,
		slots: make(chan struct{}, cfg.MaxPages),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Acquire hands out an isolated browsing context with a randomized
// user-agent, fixed viewport and fingerprint overrides. Blocks while the
// pool is exhausted; ctx cancellation aborts the wait.
func (p *Pool) Acquire(ctx context.Context) (*Context, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("no browsing context available: %w", ctx.Err())
	}

	browser, err := p.ensureBrowser()
	if err != nil {
		<-p.slots
		return nil, err
	}

	page, err := stealth.Page(browser)
	if err != nil {
		<-p.slots
		return nil, fmt.Errorf("failed to create stealth page: %w", err)
	}

	if err := p.prepare(page); err != nil {
		_ = page.Close()
		<-p.slots
		return nil, err
	}

	p.active.Add(1)
	return &Context{page: page, pool: p}, nil
}

// Stats returns the pool's current usage snapshot.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		MaxPages:    p.cfg.MaxPages,
		ActivePages: int(p.active.Load()),
	}
}

// Close shuts down the shared browser process and invalidates all contexts.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.browser != nil {
		if err := p.browser.Close(); err != nil {
			log.Printf("Error closing browser: %v", err)
		}
		p.browser = nil
	}
}

func (p *Pool) ensureBrowser() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, fmt.Errorf("session pool is closed")
	}
	if p.browser != nil {
		return p.browser, nil
	}

	l := launcher.New().
		Headless(p.cfg.Headless).
		NoSandbox(p.cfg.NoSandbox).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("disable-extensions").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-backgrounding-occluded-windows").
		Set("no-first-run").
		Set("window-size", "1920,1080")

	if bin := p.browserBin(); bin != "" {
		log.Printf("Using browser binary at: %s", bin)
		l = l.Bin(bin)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	log.Println("Shared browser process started")
	p.browser = browser
	return browser, nil
}

func (p *Pool) prepare(page *rod.Page) error {
	ua := p.randomUserAgent()
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      ua,
		AcceptLanguage: "en-US,en;q=0.9",
	}); err != nil {
		return fmt.Errorf("failed to set user agent: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("failed to set viewport: %w", err)
	}

	if _, err := page.EvalOnNewDocument(fingerprintJS); err != nil {
		return fmt.Errorf("failed to install fingerprint overrides: %w", err)
	}

	return nil
}

func (p *Pool) randomUserAgent() string {
	p.rngMu.Lock()
	defer p.rngMu.Unlock()
	return userAgents[p.rng.Intn(len(userAgents))]
}

// browserBin resolves the browser binary: CHROME_BIN, then configured path,
// then whatever launcher can find on the system.
func (p *Pool) browserBin() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		if _, err := os.Stat(bin); err == nil {
			return bin
		}
	}
	if p.cfg.Bin != "" {
		return p.cfg.Bin
	}
	if path, has := launcher.LookPath(); has {
		return path
	}
	return ""
}

// UserAgents exposes the rotation set for tests.
func UserAgents() []string {
	return userAgents
}
