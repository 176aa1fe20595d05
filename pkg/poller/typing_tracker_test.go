package poller

import (
	"sync"
	"testing"
	"time"
)

type transitionLog struct {
	mu          sync.Mutex
	transitions []bool
}

func (l *transitionLog) record(key string, typing bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transitions = append(l.transitions, typing)
}

func (l *transitionLog) snapshot() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]bool, len(l.transitions))
	copy(out, l.transitions)
	return out
}

func TestTypingTrackerIdleExpiry(t *testing.T) {
	log := &transitionLog{}
	tracker := NewTypingTracker(30*time.Millisecond, log.record)
	defer tracker.Close()

	tracker.Touch("s1")
	if !tracker.IsTyping("s1") {
		t.Fatal("expected typing after Touch")
	}

	time.Sleep(80 * time.Millisecond)
	if tracker.IsTyping("s1") {
		t.Fatal("expected idle expiry to clear typing")
	}

	got := log.snapshot()
	if len(got) != 2 || !got[0] || got[1] {
		t.Fatalf("expected [true false], got %v", got)
	}
}

func TestTypingTrackerTouchRefreshesWithoutReNotify(t *testing.T) {
	log := &transitionLog{}
	tracker := NewTypingTracker(50*time.Millisecond, log.record)
	defer tracker.Close()

	// Keystrokes faster than the idle window fire exactly one transition.
	for i := 0; i < 4; i++ {
		tracker.Touch("s1")
		time.Sleep(20 * time.Millisecond)
	}
	if got := log.snapshot(); len(got) != 1 || !got[0] {
		t.Fatalf("expected single true transition while typing, got %v", got)
	}

	time.Sleep(120 * time.Millisecond)
	if got := log.snapshot(); len(got) != 2 || got[1] {
		t.Fatalf("expected trailing false transition, got %v", got)
	}
}

func TestTypingTrackerStopClearsImmediately(t *testing.T) {
	log := &transitionLog{}
	tracker := NewTypingTracker(time.Hour, log.record)
	defer tracker.Close()

	tracker.Touch("s1")
	tracker.Stop("s1")
	if tracker.IsTyping("s1") {
		t.Fatal("Stop must clear the key")
	}
	if got := log.snapshot(); len(got) != 2 || got[1] {
		t.Fatalf("expected [true false], got %v", got)
	}

	// Stopping an idle key is a no-op.
	tracker.Stop("s1")
	if got := log.snapshot(); len(got) != 2 {
		t.Fatalf("expected no extra transitions, got %v", got)
	}
}

func TestTypingTrackerCloseClearsArmedKeys(t *testing.T) {
	log := &transitionLog{}
	tracker := NewTypingTracker(time.Hour, log.record)

	tracker.Touch("s1")
	tracker.Touch("s2")
	tracker.Close()

	// Shutdown clears every armed key so a remotely stored flag is not
	// left set forever.
	got := log.snapshot()
	falses := 0
	for _, typing := range got {
		if !typing {
			falses++
		}
	}
	if len(got) != 4 || falses != 2 {
		t.Fatalf("expected two true and two false transitions, got %v", got)
	}

	// A closed tracker ignores further activity.
	tracker.Touch("s3")
	if tracker.IsTyping("s3") {
		t.Fatal("Touch after Close must be a no-op")
	}
}

func TestTypingTrackerTracksKeysIndependently(t *testing.T) {
	log := &transitionLog{}
	tracker := NewTypingTracker(time.Hour, log.record)
	defer tracker.Close()

	tracker.Touch("s1")
	tracker.Touch("s2")
	tracker.Stop("s1")

	if tracker.IsTyping("s1") {
		t.Fatal("s1 should be cleared")
	}
	if !tracker.IsTyping("s2") {
		t.Fatal("s2 should still be typing")
	}
}
