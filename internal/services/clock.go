package services

import (
	"context"
	"sync"
	"time"
)

// latency simulates the network round-trip every operation of the original
// backend mock performed. The delay never changes results, only timing.
type latency struct {
	delay time.Duration
}

func (l latency) simulate(ctx context.Context) error {
	if l.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(l.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var (
	idMu   sync.Mutex
	lastID int64
)

// nextID generates record ids from the millisecond wall clock, the same
// scheme the persisted data was created with. Two calls in the same
// millisecond bump by one; uniqueness is only promised within a process.
func nextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// localeDate renders the en-US short date the stored records use.
func localeDate() string {
	return time.Now().Format("1/2/2006")
}
