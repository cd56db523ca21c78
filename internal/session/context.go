package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Context is one isolated browsing context handed out by the Pool. It must
// be released on every exit path; Release is idempotent and always safe to
// call, including after a failed navigation.
type Context struct {
	page *rod.Page
	pool *Pool

	releaseOnce sync.Once
}

// Navigate loads url and waits for the page load event, bounded by timeout
// and by ctx.
func (c *Context) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	page := c.page.Context(ctx).Timeout(timeout)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page load for %s failed: %w", url, err)
	}
	return nil
}

// SetCookie installs one cookie on the context, used to inject the caller's
// delivery location before navigation.
func (c *Context) SetCookie(name, value, domain string) error {
	return c.page.SetCookies([]*proto.NetworkCookieParam{{
		Name:   name,
		Value:  value,
		Domain: domain,
		Path:   "/",
	}})
}

// Elements returns the current matches for a CSS selector without waiting.
func (c *Context) Elements(selector string) (rod.Elements, error) {
	return c.page.Elements(selector)
}

// Release returns the context's pool slot and closes the underlying page.
func (c *Context) Release() {
	c.releaseOnce.Do(func() {
		_ = c.page.Close()
		c.pool.active.Add(-1)
		<-c.pool.slots
	})
}
