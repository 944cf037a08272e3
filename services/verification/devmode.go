package verification

import "sync"

// DevRecorder captures the most recently issued code, process-wide. It is an
// explicit collaborator rather than ambient state: the engine only holds one
// when dev mode is enabled in config, so production wiring never constructs
// it and the codes of real users are never retrievable.
type DevRecorder struct {
	mu   sync.RWMutex
	code string
	set  bool
}

func NewDevRecorder() *DevRecorder {
	return &DevRecorder{}
}

func (r *DevRecorder) Record(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.code = code
	r.set = true
}

func (r *DevRecorder) LastCode() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.code, r.set
}
