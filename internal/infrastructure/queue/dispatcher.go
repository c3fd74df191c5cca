package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/pkg/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// AuditDispatcher writes audit records in the background. Records for the
// same subject go to the same worker so they land in order. Record never
// blocks: when a worker queue is full the record is dropped and logged.
type AuditDispatcher struct {
	workers []chan domain.AuditRecord
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ ports.AuditRecorder = (*AuditDispatcher)(nil)

// NewAuditDispatcher creates numWorkers sharded workers with queueSize
// slots each. Non-positive values fall back to the defaults.
func NewAuditDispatcher(numWorkers, queueSize int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = channelBuffer
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditRecord, queueSize)
	}
	return d
}

// Start launches the workers. They run until Stop.
func (d *AuditDispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the queues and waits for queued records to be written or
// for ctx to end.
func (d *AuditDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *AuditDispatcher) Record(rec domain.AuditRecord) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		metrics.AuditRecordsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("action", string(rec.Action)).Msg("audit record after shutdown dropped")
		return
	}

	select {
	case d.workers[d.shardIndex(rec.Subject)] <- rec:
		metrics.AuditQueueDepth.Inc()
	default:
		metrics.AuditRecordsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("action", string(rec.Action)).
			Str("subject", rec.Subject).
			Msg("audit queue full, record dropped")
	}
}

func (d *AuditDispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(id int, ch <-chan domain.AuditRecord) {
	defer d.wg.Done()
	for rec := range ch {
		metrics.AuditQueueDepth.Dec()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := d.repo.Insert(ctx, &rec)
		cancel()

		if err != nil {
			metrics.AuditRecordsTotal.WithLabelValues("failed").Inc()
			d.log.Error().Err(err).
				Str("action", string(rec.Action)).
				Int("worker_id", id).
				Msg("audit write failed")
			continue
		}
		metrics.AuditRecordsTotal.WithLabelValues("written").Inc()
	}
}
