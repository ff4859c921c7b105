package insight

import (
	"context"
	"sync"
)

// Memo caches successful responses by request fingerprint. Failures
// are never cached, so a retry with the same request reaches the
// provider again. Safe for concurrent use.
type Memo struct {
	next Generator

	mu      sync.Mutex
	entries map[string]*Response
}

// NewMemo wraps next with an unbounded in-memory cache.
func NewMemo(next Generator) *Memo {
	return &Memo{next: next, entries: make(map[string]*Response)}
}

// Generate returns the cached response for an identical request, or
// delegates and caches on success.
func (m *Memo) Generate(ctx context.Context, req Request) (*Response, error) {
	key := req.Fingerprint()

	m.mu.Lock()
	cached, ok := m.entries[key]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	resp, err := m.next.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = resp
	m.mu.Unlock()
	return resp, nil
}

// Invalidate drops all cached responses.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	m.entries = make(map[string]*Response)
	m.mu.Unlock()
}
