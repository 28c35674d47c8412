package domain

import (
	"strconv"
	"strings"
	"sync"
)

// PageCacheControl folds the Cache-Control headers of every GraphQL response
// used to render a page into the header the page itself may be served with.
type PageCacheControl struct {
	mu      sync.Mutex
	maxAge  int
	hasAge  bool
	noCache bool
	noStore bool
	private bool
}

// NewPageCacheControl returns an empty aggregate.
func NewPageCacheControl() *PageCacheControl {
	return &PageCacheControl{}
}

// Update merges one response Cache-Control header.
// The lowest max-age wins; no-cache, no-store and private are sticky.
func (c *PageCacheControl) Update(header string) {
	if header == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, directive := range strings.Split(header, ",") {
		name, value, _ := strings.Cut(strings.TrimSpace(directive), "=")
		switch strings.ToLower(name) {
		case "no-cache":
			c.noCache = true
		case "no-store":
			c.noStore = true
		case "private":
			c.private = true
		case "max-age", "s-maxage":
			age, err := strconv.Atoi(strings.Trim(value, `"`))
			if err != nil || age < 0 {
				continue
			}
			if !c.hasAge || age < c.maxAge {
				c.maxAge = age
				c.hasAge = true
			}
		}
	}
}

// MaxAge returns the lowest max-age seen, and whether any was seen.
func (c *PageCacheControl) MaxAge() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxAge, c.hasAge
}

// NoCache reports whether any response forbade caching without revalidation.
func (c *PageCacheControl) NoCache() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noCache
}

// NoStore reports whether any response forbade storing.
func (c *PageCacheControl) NoStore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noStore
}

// String renders the aggregate as a Cache-Control header value.
func (c *PageCacheControl) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var parts []string
	if c.noStore {
		parts = append(parts, "no-store")
	}
	if c.noCache {
		parts = append(parts, "no-cache")
	}
	if c.private {
		parts = append(parts, "private")
	} else if !c.noStore && !c.noCache {
		parts = append(parts, "public")
	}
	if c.hasAge && !c.noStore {
		parts = append(parts, "max-age="+strconv.Itoa(c.maxAge))
	}
	return strings.Join(parts, ", ")
}
