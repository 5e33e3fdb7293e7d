// Package ratelimit provides a per-key sliding-window rate limiter.
//
// The limiter keeps no clock of its own: callers pass the current time into
// every operation, which keeps decisions deterministic under test.
package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow admits at most limit events per key within a rolling window.
type SlidingWindow struct {
	mu     sync.Mutex
	events map[string][]time.Time
	limit  int
	window time.Duration
}

// NewSlidingWindow creates a limiter admitting up to limit events per key
// within any window-sized interval.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		events: make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
}

// RecordAndCheck records an event at now for key and reports whether the key
// is still within its limit. The event counts even when the answer is false:
// a denied caller that keeps retrying keeps its window full instead of
// sneaking back in the moment the oldest event ages out.
func (l *SlidingWindow) RecordAndCheck(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	events := append(l.events[key], now)
	events = pruneBefore(events, now.Add(-l.window))
	l.events[key] = events
	return len(events) <= l.limit
}

// Count reports how many recorded events for key fall inside the window
// ending at now, pruning aged-out events as a side effect. A key with no
// recorded events counts as zero; it is never an error.
func (l *SlidingWindow) Count(key string, now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	events := pruneBefore(l.events[key], now.Add(-l.window))
	if len(events) == 0 {
		delete(l.events, key)
	} else {
		l.events[key] = events
	}
	return len(events)
}

// Reset forgets all recorded events for key.
func (l *SlidingWindow) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.events, key)
}

// pruneBefore drops events at or before cutoff. Timestamps arrive in
// non-decreasing order per key, so aged-out events sit at the front and
// pruning is a single slice advance.
func pruneBefore(events []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(events) && !events[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return events
	}
	return append(events[:0], events[i:]...)
}
