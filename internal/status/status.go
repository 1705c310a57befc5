// Package status holds the single current localizable status line surfaced to
// the operator. Last write wins; there is no queue and no history.
package status

import "sync"

// Params carries substitution values for a parameterized status entry.
type Params map[string]any

// Message is a dictionary key plus its parameters. Rendering through the
// locale dictionary is the presentation layer's job.
type Message struct {
	Key    string
	Params Params
}

// Reporter is the process-wide status slot.
type Reporter struct {
	mu      sync.Mutex
	current Message
}

// NewReporter starts in the ready state, matching a freshly opened console.
func NewReporter() *Reporter {
	return &Reporter{current: Message{Key: "status.ready"}}
}

// Set replaces the current status wholesale.
func (r *Reporter) Set(key string, params Params) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Message{Key: key, Params: params}
}

// Current returns the latest status message.
func (r *Reporter) Current() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
