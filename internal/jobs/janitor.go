// Package jobs contains the background maintenance loops.
package jobs

import (
	"context"
	"log"
	"time"
)

// Purger is the part of the lookup cache the janitor needs.
type Purger interface {
	PurgeExpired() int
}

// Janitor periodically drops expired lookup-cache entries so idle
// sessions do not hold stale payloads for the full capacity window.
// Purge-on-access still applies; this is only an eager sweep.
type Janitor struct {
	cache    Purger
	interval time.Duration
}

// NewJanitor creates a janitor sweeping at the given interval.
func NewJanitor(cache Purger, interval time.Duration) *Janitor {
	return &Janitor{cache: cache, interval: interval}
}

// Start begins the sweep loop and blocks until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	log.Printf("Cache janitor started (interval: %v)", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache janitor stopped")
			return
		case <-ticker.C:
			if purged := j.cache.PurgeExpired(); purged > 0 {
				log.Printf("Cache janitor purged %d expired entries", purged)
			}
		}
	}
}
