// Package assetcache is the offline-cache collaborator in front of
// the static file and media handlers. It mirrors a service worker:
// media is served cache-first with background population, everything
// else stale-while-revalidate, and the two control messages
// (skip-waiting and clear-cache) are exposed as methods.
package assetcache

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
)

// Name is the cache version label. Bumping it and promoting via
// SkipWaiting drops entries written by older code.
const Name = "majasdoc-v1"

type entry struct {
	status int
	header http.Header
	body   []byte
}

// Cache stores successful GET responses keyed by request path. A
// staged generation can be built up (e.g. by the warm command's
// precache) and promoted atomically.
type Cache struct {
	mu      sync.RWMutex
	name    string
	entries map[string]*entry
	staged  map[string]*entry
}

// New returns an empty cache under the current version name.
func New() *Cache {
	return &Cache{
		name:    Name,
		entries: make(map[string]*entry),
	}
}

// Len reports the number of active entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ClearCache drops every entry, active and staged.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.staged = nil
	log.Printf("assetcache: cleared %s", c.name)
}

// Stage records an entry into the pending generation without making
// it visible.
func (c *Cache) stage(path string, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		c.staged = make(map[string]*entry)
	}
	c.staged[path] = e
}

// SkipWaiting promotes the staged generation immediately, replacing
// the active entries. Without a staged generation it is a no-op.
func (c *Cache) SkipWaiting() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return
	}
	c.entries = c.staged
	c.staged = nil
	log.Printf("assetcache: activated staged generation of %s", c.name)
}

func (c *Cache) get(path string) *entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[path]
}

func (c *Cache) put(path string, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = e
}

// isMedia decides the caching strategy by path, the same split the
// original worker makes.
func isMedia(path string) bool {
	return strings.Contains(path, "/media/")
}

// Handler wraps upstream with the two caching strategies. Only GET
// responses with status 200 are cached; everything else passes
// through untouched.
func (c *Cache) Handler(upstream http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			upstream.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path
		cached := c.get(path)

		if isMedia(path) {
			// Cache-first: a hit is served as-is, no refresh.
			if cached != nil {
				serveEntry(w, cached)
				return
			}
			e := capture(upstream, r)
			serveEntry(w, e)
			if e.status == http.StatusOK {
				go c.put(path, e)
			}
			return
		}

		// Stale-while-revalidate: serve a hit immediately and always
		// refresh from upstream in the background.
		if cached != nil {
			serveEntry(w, cached)
			go c.refresh(upstream, r)
			return
		}
		e := capture(upstream, r)
		serveEntry(w, e)
		if e.status == http.StatusOK {
			c.put(path, e)
		}
	})
}

// refresh re-runs the request against upstream and updates the cache
// when it succeeds. Failures leave the cached entry in place.
func (c *Cache) refresh(upstream http.Handler, r *http.Request) {
	clone := r.Clone(context.Background())
	e := capture(upstream, clone)
	if e.status == http.StatusOK {
		c.put(r.URL.Path, e)
	}
}

// Precache runs a GET for path against upstream and stores the result
// directly into the active generation.
func (c *Cache) Precache(upstream http.Handler, path string) bool {
	r, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return false
	}
	e := capture(upstream, r)
	if e.status != http.StatusOK {
		return false
	}
	c.put(path, e)
	return true
}

// StageFrom records a GET for path into the staged generation; the
// entries become visible on the next SkipWaiting. Startup precaching
// builds the whole generation this way before activating it at once.
func (c *Cache) StageFrom(upstream http.Handler, path string) bool {
	r, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return false
	}
	e := capture(upstream, r)
	if e.status != http.StatusOK {
		return false
	}
	c.stage(path, e)
	return true
}

// capture records upstream's response to r.
func capture(upstream http.Handler, r *http.Request) *entry {
	rec := &recorder{header: make(http.Header), status: http.StatusOK}
	upstream.ServeHTTP(rec, r)
	return &entry{status: rec.status, header: rec.header, body: rec.body.Bytes()}
}

func serveEntry(w http.ResponseWriter, e *entry) {
	for k, vv := range e.header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(e.status)
	w.Write(e.body)
}

// recorder is a minimal ResponseWriter that buffers the response.
type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) { r.status = status }

func (r *recorder) Write(p []byte) (int, error) { return r.body.Write(p) }
