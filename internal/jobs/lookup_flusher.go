package jobs

import (
	"context"
	"log"
	"time"
)

const (
	// finalFlushTimeout bounds the flush performed on shutdown.
	finalFlushTimeout = 5 * time.Second

	// DefaultFlushInterval replaces a non-positive interval.
	DefaultFlushInterval = 30 * time.Second
)

// Flusher persists pending answer counts.
type Flusher interface {
	Flush(ctx context.Context) (int, error)
}

// LookupFlusher periodically writes pending answer counts to the database.
type LookupFlusher struct {
	flusher  Flusher
	interval time.Duration
}

// NewLookupFlusher creates a new lookup flusher. A non-positive interval
// is replaced by DefaultFlushInterval.
func NewLookupFlusher(flusher Flusher, interval time.Duration) *LookupFlusher {
	if interval <= 0 {
		log.Printf("Lookup flusher: invalid interval %v, using %v", interval, DefaultFlushInterval)
		interval = DefaultFlushInterval
	}
	return &LookupFlusher{
		flusher:  flusher,
		interval: interval,
	}
}

// Start runs the flush loop until ctx is cancelled, then flushes once more
// so counts recorded just before shutdown are not lost.
func (f *LookupFlusher) Start(ctx context.Context) {
	log.Printf("Lookup flusher started (interval: %v)", f.interval)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
			f.flush(finalCtx)
			cancel()
			log.Println("Lookup flusher stopped")
			return
		case <-ticker.C:
			f.flush(ctx)
		}
	}
}

func (f *LookupFlusher) flush(ctx context.Context) {
	n, err := f.flusher.Flush(ctx)
	if err != nil {
		log.Printf("Lookup flusher: failed to flush answer counts: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Lookup flusher: persisted %d answer counts", n)
	}
}
