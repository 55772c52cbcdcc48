package client

import (
	"strings"
	"sync"
)

// keySep joins key segments. It never appears in kinds, so invalidating
// "lead" cannot touch "leads" entries and vice versa.
const keySep = "\x1f"

func cacheKey(segments ...string) string {
	return strings.Join(segments, keySep)
}

type inflightCall struct {
	done  chan struct{}
	value interface{}
	err   error
}

// queryCache stores fetched results by key and collapses concurrent
// fetches of the same key into one request.
type queryCache struct {
	mu       sync.Mutex
	entries  map[string]interface{}
	inflight map[string]*inflightCall
}

func newQueryCache() *queryCache {
	return &queryCache{
		entries:  make(map[string]interface{}),
		inflight: make(map[string]*inflightCall),
	}
}

// fetch returns the cached value for key, or runs fn exactly once no
// matter how many callers arrive concurrently, and caches its result.
// Errors are returned to every waiter and never cached.
func (qc *queryCache) fetch(key string, fn func() (interface{}, error)) (interface{}, error) {
	qc.mu.Lock()
	if v, ok := qc.entries[key]; ok {
		qc.mu.Unlock()
		return v, nil
	}
	if call, ok := qc.inflight[key]; ok {
		qc.mu.Unlock()
		<-call.done
		return call.value, call.err
	}

	call := &inflightCall{done: make(chan struct{})}
	qc.inflight[key] = call
	qc.mu.Unlock()

	call.value, call.err = fn()

	qc.mu.Lock()
	delete(qc.inflight, key)
	if call.err == nil {
		qc.entries[key] = call.value
	}
	qc.mu.Unlock()

	close(call.done)
	return call.value, call.err
}

func (qc *queryCache) get(key string) (interface{}, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	v, ok := qc.entries[key]
	return v, ok
}

// set replaces an entry directly (write-through).
func (qc *queryCache) set(key string, value interface{}) {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	qc.entries[key] = value
}

func (qc *queryCache) remove(key string) {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	delete(qc.entries, key)
}

// invalidateKind drops every entry whose key starts with the given kind.
func (qc *queryCache) invalidateKind(kind string) {
	prefix := kind + keySep
	qc.mu.Lock()
	defer qc.mu.Unlock()
	for key := range qc.entries {
		if key == kind || strings.HasPrefix(key, prefix) {
			delete(qc.entries, key)
		}
	}
}

func (qc *queryCache) invalidateAll() {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	qc.entries = make(map[string]interface{})
}
