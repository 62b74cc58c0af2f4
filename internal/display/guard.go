package display

import "sync"

// Guard serializes every use of one Display. The HTTP dispatcher and the
// scheduler share a Guard, so one operation runs at a time.
type Guard struct {
	mu sync.Mutex
	d  *Display
}

// NewGuard wraps d.
func NewGuard(d *Display) *Guard { return &Guard{d: d} }

// Do runs fn with exclusive access to the display.
func (g *Guard) Do(fn func(d *Display) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.d)
}
