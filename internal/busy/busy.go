// Package busy tracks the name of the in-flight asynchronous action. The
// guard is advisory: it never blocks or queues a second invocation, it only
// reports "currently active" so the presentation layer can disable the
// triggering control. It must not be upgraded to a real mutex unless request
// deduplication becomes a requirement.
package busy

import "sync"

// Guard is the single global register of the current action name.
type Guard struct {
	mu      sync.Mutex
	current string
}

// Run arms the guard with name, invokes fn, and always disarms afterwards,
// including when fn panics. Concurrent callers are not excluded; each arms
// and disarms independently, so the register simply reflects the most recent
// entry until the last caller settles.
func (g *Guard) Run(name string, fn func() error) error {
	g.set(name)
	defer g.set("")
	return fn()
}

// Current returns the active action name, or "" when idle.
func (g *Guard) Current() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Busy reports whether the named action is currently registered.
func (g *Guard) Busy(name string) bool {
	return g.Current() == name
}

// Idle reports whether no action is registered.
func (g *Guard) Idle() bool {
	return g.Current() == ""
}

func (g *Guard) set(name string) {
	g.mu.Lock()
	g.current = name
	g.mu.Unlock()
}
