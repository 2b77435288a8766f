package metrics

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"legaldemo/internal/models"
)

var (
	answersDesc = prometheus.NewDesc(
		"legaldemo_answers_total",
		"Total answers served by entry and outcome",
		[]string{"entry", "outcome"},
		nil,
	)
)

// collectTimeout bounds the store query made on each scrape.
const collectTimeout = 5 * time.Second

// Store persists answer counts. *db.DB implements it.
type Store interface {
	IncrementLookups(ctx context.Context, deltas []models.LookupDelta) error
	GetAllLookups(ctx context.Context) ([]models.AnswerLookup, error)
}

type lookupKey struct {
	entry   string
	outcome string
}

// Recorder counts answers in memory and, when a store is configured, hands
// the pending counts to it on Flush.
type Recorder struct {
	store    Store
	duration *prometheus.HistogramVec

	mu      sync.Mutex
	totals  map[lookupKey]int64
	pending map[lookupKey]int64
}

// NewRecorder creates a recorder. store may be nil.
func NewRecorder(store Store) *Recorder {
	return &Recorder{
		store: store,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "legaldemo_answer_duration_seconds",
			Help:    "Time spent producing an answer by strategy",
			Buckets: prometheus.DefBuckets,
		}, []string{"strategy"}),
		totals:  make(map[lookupKey]int64),
		pending: make(map[lookupKey]int64),
	}
}

// Register adds the answer collector and the duration histogram to reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	if err := reg.Register(&AnswerCollector{recorder: r}); err != nil {
		return err
	}
	return reg.Register(r.duration)
}

// Record counts one answer and observes how long it took.
func (r *Recorder) Record(result *models.QueryResult, elapsed time.Duration) {
	key := keyFor(result)
	r.duration.WithLabelValues(result.Strategy).Observe(elapsed.Seconds())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals[key]++
	if r.store != nil {
		r.pending[key]++
	}
}

// Flush persists pending counts and returns how many rows were written.
// On failure the counts stay pending for the next flush.
func (r *Recorder) Flush(ctx context.Context) (int, error) {
	if r.store == nil {
		return 0, nil
	}

	r.mu.Lock()
	batch := r.pending
	r.pending = make(map[lookupKey]int64)
	r.mu.Unlock()

	if len(batch) == 0 {
		return 0, nil
	}

	deltas := toDeltas(batch)
	if err := r.store.IncrementLookups(ctx, deltas); err != nil {
		r.mu.Lock()
		for k, n := range batch {
			r.pending[k] += n
		}
		r.mu.Unlock()
		return 0, err
	}
	return len(deltas), nil
}

// Totals returns the counts recorded by this process, sorted by entry
// then outcome.
func (r *Recorder) Totals() []models.LookupDelta {
	r.mu.Lock()
	defer r.mu.Unlock()
	return toDeltas(r.totals)
}

// Pending returns the counts not yet flushed to the store.
func (r *Recorder) Pending() []models.LookupDelta {
	r.mu.Lock()
	defer r.mu.Unlock()
	return toDeltas(r.pending)
}

func keyFor(result *models.QueryResult) lookupKey {
	entry := result.EntryKey
	if entry == "" {
		entry = models.NoEntry
	}
	switch {
	case result.Strategy == models.StrategyLive:
		return lookupKey{entry: entry, outcome: models.OutcomeLive}
	case result.Matched:
		return lookupKey{entry: entry, outcome: models.OutcomeMatched}
	default:
		return lookupKey{entry: entry, outcome: models.OutcomeFallback}
	}
}

func toDeltas(counts map[lookupKey]int64) []models.LookupDelta {
	deltas := make([]models.LookupDelta, 0, len(counts))
	for k, n := range counts {
		deltas = append(deltas, models.LookupDelta{Entry: k.entry, Outcome: k.outcome, Count: n})
	}
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Entry != deltas[j].Entry {
			return deltas[i].Entry < deltas[j].Entry
		}
		return deltas[i].Outcome < deltas[j].Outcome
	})
	return deltas
}

// AnswerCollector is a custom Prometheus collector for answer counts. With a
// store it reports persisted totals plus pending counts so values survive
// restarts; otherwise it reports this process's totals.
type AnswerCollector struct {
	recorder *Recorder
}

// Describe sends the metric descriptor to the channel.
func (c *AnswerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- answersDesc
}

// Collect emits one counter per entry and outcome.
func (c *AnswerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, d := range c.counts() {
		ch <- prometheus.MustNewConstMetric(
			answersDesc,
			prometheus.CounterValue,
			float64(d.Count),
			d.Entry,
			d.Outcome,
		)
	}
}

func (c *AnswerCollector) counts() []models.LookupDelta {
	r := c.recorder
	if r.store == nil {
		return r.Totals()
	}

	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	lookups, err := r.store.GetAllLookups(ctx)
	if err != nil {
		slog.Error("failed to collect answer metrics", "error", err)
		return r.Totals()
	}

	merged := make(map[lookupKey]int64, len(lookups))
	for _, l := range lookups {
		merged[lookupKey{entry: l.Entry, outcome: l.Outcome}] += l.Count
	}
	for _, d := range r.Pending() {
		merged[lookupKey{entry: d.Entry, outcome: d.Outcome}] += d.Count
	}
	return toDeltas(merged)
}
