package poller

import (
	"context"
	"testing"
	"time"
)

func TestReconcilerReplacesOnGrowth(t *testing.T) {
	snapshots := [][]string{
		{"a"},
		{"a"},           // same length: ignored
		{"a", "b", "c"}, // grew: applied
		{"b"},           // shrank: ignored
	}
	i := 0
	fetch := func(ctx context.Context) ([]string, error) {
		s := snapshots[i]
		if i < len(snapshots)-1 {
			i++
		}
		return s, nil
	}

	var applied [][]string
	r := NewReconciler(time.Hour, fetch, func(s []string) {
		applied = append(applied, s)
	})

	ctx := context.Background()
	for range snapshots {
		r.poll(ctx)
	}

	if len(applied) != 2 {
		t.Fatalf("expected 2 applies, got %d: %v", len(applied), applied)
	}
	if len(applied[0]) != 1 || len(applied[1]) != 3 {
		t.Fatalf("unexpected applied snapshots: %v", applied)
	}
	if got := r.Local(); len(got) != 3 {
		t.Fatalf("local copy should hold the grown snapshot, got %v", got)
	}
}

func TestReconcilerSkipsFetchErrors(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return nil, context.DeadlineExceeded
		}
		return []int{1, 2}, nil
	}

	applies := 0
	r := NewReconciler(time.Hour, fetch, func([]int) { applies++ })

	r.poll(context.Background())
	if applies != 0 {
		t.Fatal("a failed fetch must not touch local state")
	}
	r.poll(context.Background())
	if applies != 1 {
		t.Fatalf("expected 1 apply after recovery, got %d", applies)
	}
}

func TestReconcilerResetForcesReplace(t *testing.T) {
	fetch := func(ctx context.Context) ([]int, error) {
		return []int{1}, nil
	}
	applies := 0
	r := NewReconciler(time.Hour, fetch, func([]int) { applies++ })

	r.poll(context.Background())
	r.poll(context.Background())
	if applies != 1 {
		t.Fatalf("equal snapshot must not re-apply, got %d", applies)
	}

	r.Reset()
	r.poll(context.Background())
	if applies != 2 {
		t.Fatalf("after Reset the next snapshot applies, got %d", applies)
	}
}

func TestReconcilerRunStopsOnCancel(t *testing.T) {
	fetch := func(ctx context.Context) ([]int, error) { return nil, nil }
	r := NewReconciler(5*time.Millisecond, fetch, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}
