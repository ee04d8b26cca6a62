package api

import "sync"

// inflightGate serializes one operation per key. The profile save handler
// uses it so rapid repeated submissions for the same session cannot race.
type inflightGate struct {
	mu     sync.Mutex
	active map[string]bool
}

func newInflightGate() *inflightGate {
	return &inflightGate{
		active: make(map[string]bool),
	}
}

// begin reports whether the caller acquired the key. A false return means
// an operation for the key is already in flight.
func (gate *inflightGate) begin(key string) bool {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	if gate.active[key] {
		return false
	}
	gate.active[key] = true
	return true
}

func (gate *inflightGate) end(key string) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	delete(gate.active, key)
}
