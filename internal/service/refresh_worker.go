package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/SanaUllah13/youtools-go/internal/repository"
	"github.com/SanaUllah13/youtools-go/pkg/normalize"
)

// refreshThreshold: cache entries with less remaining lifetime than this get
// re-analyzed ahead of expiry.
const refreshThreshold = 10 * time.Minute

// topInputCount bounds how many popular inputs one tick considers.
const topInputCount = 10

// RefreshWorker is a periodic background job that re-runs the most
// frequently analyzed inputs shortly before their cache entries expire, so
// popular niches stay served from cache.
type RefreshWorker struct {
	analyze  *AnalyzeService
	cache    *CacheService
	repo     *repository.AnalysisRepo
	interval time.Duration
	stopCh   chan struct{}
}

// NewRefreshWorker creates a worker that ticks every interval.
func NewRefreshWorker(analyze *AnalyzeService, cache *CacheService, repo *repository.AnalysisRepo, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		analyze:  analyze,
		cache:    cache,
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic refresh loop. It runs one tick immediately,
// then every interval.
func (w *RefreshWorker) Start(ctx context.Context) {
	if !w.repo.Enabled() {
		log.Println("refresh-worker: no database configured, not starting")
		return
	}

	log.Printf("refresh-worker: starting (interval=%s)", w.interval)
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("refresh-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("refresh-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RefreshWorker) Stop() {
	close(w.stopCh)
}

// tick runs one cycle: find the popular inputs and re-analyze the ones
// whose cache entries are close to expiring.
func (w *RefreshWorker) tick(ctx context.Context) {
	start := time.Now()

	inputs, err := w.repo.TopInputs(ctx, topInputCount)
	if err != nil {
		log.Printf("refresh-worker: top inputs query failed: %v", err)
		return
	}

	refreshed := 0
	for _, input := range inputs {
		key := normalize.CacheKey(input)

		ttl, err := w.cache.TTL(ctx, key)
		if err != nil {
			log.Printf("refresh-worker: ttl check failed for %s: %v", key, err)
			continue
		}
		if ttl > refreshThreshold {
			continue
		}

		// Drop the stale entry so Analyze runs the full pipeline and
		// rewrites the cache.
		if err := w.cache.Invalidate(ctx, key); err != nil {
			log.Printf("refresh-worker: invalidate failed for %s: %v", key, err)
			continue
		}
		if _, err := w.analyze.Analyze(ctx, input); err != nil {
			if errors.Is(err, ErrNoCompetitorData) {
				log.Printf("refresh-worker: %s no longer yields competitor data", key)
			} else {
				log.Printf("refresh-worker: refresh failed for %s: %v", key, err)
			}
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		log.Printf("refresh-worker: tick complete — %d of %d popular inputs refreshed (%s)",
			refreshed, len(inputs), time.Since(start).Round(time.Millisecond))
	}
}
