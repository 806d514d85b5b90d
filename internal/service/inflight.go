package service

import "sync"

// inflight tracks mutating requests that have been sent but not yet answered,
// keyed by "<resource>/<id>". A second submit for the same key is rejected
// with ErrRequestInFlight instead of producing a duplicate server write.
type inflight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{keys: make(map[string]struct{})}
}

// begin claims key. The caller must release it with end once the request has
// settled, success and failure alike.
func (f *inflight) begin(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.keys[key]; busy {
		return ErrRequestInFlight
	}
	f.keys[key] = struct{}{}
	return nil
}

func (f *inflight) end(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
}
