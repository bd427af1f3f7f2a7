package weather

import (
	"sync"
	"time"
)

const defaultDebounceWait = 300 * time.Millisecond

// Debounce collapses bursts of calls into the last call after a quiet
// period: each invocation resets the pending timer, and only the final
// invocation within a window actually runs fn, with its argument forwarded
// verbatim. Every Debounce call produces an independently-scheduled
// wrapper; wrappers never share timer state. There is no flush or cancel
// beyond superseding the pending call with a new one.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	if wait <= 0 {
		wait = defaultDebounceWait
	}

	var mu sync.Mutex
	var timer *time.Timer

	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			fn(arg)
		})
	}
}
