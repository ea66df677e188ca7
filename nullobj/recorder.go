package nullobj

import "sync"

// Recorder is an embeddable, concurrency-safe invocation log for neutral
// variants. A no-op capability records its name so tests can verify that
// the call completed without effect rather than silently vanishing.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

// Record appends a capability name to the log.
func (r *Recorder) Record(capability string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, capability)
}

// Calls returns a copy of the recorded capability names in invocation order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns the number of recorded invocations.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
