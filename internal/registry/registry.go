// Package registry holds the process-wide default Engine. It exists so
// that package-level helpers (avrolit.Parse) can share one construction
// across concurrent first callers without a data race or duplicate work.
package registry

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/avrophonetic/avrolit/internal/engine"
	"github.com/avrophonetic/avrolit/internal/pattern"
)

var (
	group singleflight.Group

	mu      sync.RWMutex
	cached  *engine.Engine
	cachErr error
	built   bool
)

// Default returns the shared default Engine, building it from the
// embedded rule table on first use. Concurrent first callers collapse
// onto a single build via singleflight; later callers hit the cache.
func Default() (*engine.Engine, error) {
	mu.RLock()
	if built {
		e, err := cached, cachErr
		mu.RUnlock()
		return e, err
	}
	mu.RUnlock()

	v, err, _ := group.Do("default", func() (interface{}, error) {
		e, buildErr := engine.New(pattern.DefaultData(), engine.DefaultConfig())

		mu.Lock()
		cached, cachErr, built = e, buildErr, true
		mu.Unlock()

		return e, buildErr
	})
	if err != nil {
		return nil, err
	}
	return v.(*engine.Engine), nil
}

// Reset clears the cached default engine, forcing the next Default call
// to rebuild it. The tests use it to exercise first-use construction.
func Reset() {
	mu.Lock()
	cached, cachErr, built = nil, nil, false
	mu.Unlock()
}
