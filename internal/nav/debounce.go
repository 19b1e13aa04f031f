package nav

import (
	"sync"
	"time"
)

// SearchDebounce is the quiescence window for search input: keystrokes
// closer together than this coalesce into one evaluation.
const SearchDebounce = 200 * time.Millisecond

// Debouncer coalesces bursts of calls: Call schedules fn after the
// window, cancelling any pending one, so only the last call in a burst
// runs. The zero value is not usable; use NewDebouncer.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given quiescence window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Call schedules fn to run after the window, replacing any pending
// scheduled function. fn runs on a timer goroutine.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
