package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/styledecor/booking-api/internal/api/metrics"
	"github.com/styledecor/booking-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// EventWriter persists a single audit event.
type EventWriter interface {
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}

// Dispatcher routes booking audit events to a fixed set of workers using
// consistent hashing on the booking id, so events for one booking are always
// written in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.BookingEvent
	writer  EventWriter
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, writer EventWriter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.BookingEvent, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.BookingEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event for the worker responsible for its booking.
// When the worker's buffer is full the event is dropped with a warning:
// the audit trail is best-effort and must never block a request.
func (d *Dispatcher) Record(event domain.BookingEvent) {
	idx := d.shardIndex(event.BookingID)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().Str("booking_id", event.BookingID).Str("action", event.Action).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a booking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.BookingEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.writer.InsertEvent(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("booking_id", event.BookingID).
					Int("worker_id", id).
					Msg("audit event write failed")
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
