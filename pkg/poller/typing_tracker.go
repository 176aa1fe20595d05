package poller

import (
	"sync"
	"time"
)

// DefaultTypingIdle is how long after the last keystroke a participant is
// still considered typing.
const DefaultTypingIdle = 2 * time.Second

// TypingTracker debounces typing activity per key (session id). Touch marks
// the key as typing and arms an idle timer; when the timer fires without
// another Touch, the key flips back to not typing. The notify callback
// fires only on transitions.
type TypingTracker struct {
	idle   time.Duration
	notify func(key string, typing bool)

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewTypingTracker(idle time.Duration, notify func(key string, typing bool)) *TypingTracker {
	if idle <= 0 {
		idle = DefaultTypingIdle
	}
	return &TypingTracker{
		idle:   idle,
		notify: notify,
		timers: make(map[string]*time.Timer),
	}
}

func (t *TypingTracker) Touch(key string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	timer, active := t.timers[key]
	if active {
		timer.Reset(t.idle)
		t.mu.Unlock()
		return
	}
	t.timers[key] = time.AfterFunc(t.idle, func() {
		t.expire(key)
	})
	t.mu.Unlock()

	t.notify(key, true)
}

func (t *TypingTracker) expire(key string) {
	t.mu.Lock()
	_, active := t.timers[key]
	delete(t.timers, key)
	t.mu.Unlock()

	if active {
		t.notify(key, false)
	}
}

// Stop clears a key immediately, e.g. when the message is sent.
func (t *TypingTracker) Stop(key string) {
	t.mu.Lock()
	timer, active := t.timers[key]
	if active {
		timer.Stop()
		delete(t.timers, key)
	}
	t.mu.Unlock()

	if active {
		t.notify(key, false)
	}
}

// IsTyping reports whether the key currently has an armed timer.
func (t *TypingTracker) IsTyping(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, active := t.timers[key]
	return active
}

// Close stops all timers and clears every armed key, so a typing flag
// pushed to a remote store does not outlive the tracker.
func (t *TypingTracker) Close() {
	t.mu.Lock()
	t.closed = true
	armed := make([]string, 0, len(t.timers))
	for key, timer := range t.timers {
		timer.Stop()
		delete(t.timers, key)
		armed = append(armed, key)
	}
	t.mu.Unlock()

	for _, key := range armed {
		t.notify(key, false)
	}
}
