package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/grachmannico95/verbs-service/pkg/logger"
)

var ErrBusClosed = errors.New("event bus is shut down")

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	// Dropped counts events discarded because their queue was full.
	Dropped() uint64
}

// topic is the queue of one event type and the consumers draining it.
type topic struct {
	queue     chan Event
	consumers []Consumer
}

type eventBus struct {
	topics  map[EventType]*topic
	buffer  int
	logger  *logger.Logger
	dropped atomic.Uint64

	mu      sync.RWMutex
	workers sync.WaitGroup
	cancel  context.CancelFunc
	started bool
	closed  bool
}

type Config struct {
	ChannelBuffer int
}

func New(log *logger.Logger, cfg *Config) EventBus {
	buffer := 1000
	if cfg != nil {
		buffer = cfg.ChannelBuffer
	}

	return &eventBus{
		topics: make(map[EventType]*topic),
		buffer: buffer,
		logger: log,
	}
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}

	t, ok := eb.topics[eventType]
	if !ok {
		t = &topic{queue: make(chan Event, eb.buffer)}
		eb.topics[eventType] = t
	}
	t.consumers = append(t.consumers, consumer)
	return nil
}

// Start launches GetWorkerCount workers per consumer. Calling it again is a
// no-op.
func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	switch {
	case eb.closed:
		return ErrBusClosed
	case eb.started:
		return nil
	}

	ctx, eb.cancel = context.WithCancel(ctx)

	for eventType, t := range eb.topics {
		for _, consumer := range t.consumers {
			n := consumer.GetWorkerCount()
			eb.logger.Info(ctx, "Starting workers", "event_type", eventType, "worker_count", n)

			for id := 0; id < n; id++ {
				eb.workers.Add(1)
				go eb.work(ctx, t.queue, consumer, id)
			}
		}
	}

	eb.started = true
	eb.logger.Info(ctx, "Event bus started", "topics", len(eb.topics))
	return nil
}

// work consumes until the queue is closed and empty, or ctx is cancelled.
func (eb *eventBus) work(ctx context.Context, queue <-chan Event, consumer Consumer, workerID int) {
	defer eb.workers.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-queue:
			if !ok {
				return
			}
			eb.deliver(ctx, event, consumer, workerID)
		}
	}
}

// deliver hands event to consumer exactly once; a failure is logged and the
// event is not requeued.
func (eb *eventBus) deliver(ctx context.Context, event Event, consumer Consumer, workerID int) {
	if event.ID != "" {
		ctx = logger.WithTraceID(ctx, event.ID)
	}
	fields := []interface{}{"event_id", event.ID, "event_type", event.Type, "worker_id", workerID}

	if err := consumer.Consume(ctx, event); err != nil {
		eb.logger.Error(ctx, "Failed to process event", append(fields, "error", err)...)
		return
	}
	eb.logger.Debug(ctx, "Event processed", fields...)
}

// Publish queues event without blocking. An event with no subscriber is
// ignored; one whose queue is full is dropped and counted.
func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}

	t, ok := eb.topics[event.Type]
	if !ok {
		eb.logger.Warn(ctx, "No subscriber for event", "event_type", event.Type, "event_id", event.ID)
		return nil
	}

	select {
	case t.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		eb.dropped.Add(1)
		eb.logger.Warn(ctx, "Event queue full, event dropped", "event_type", event.Type, "event_id", event.ID)
		return nil
	}
}

func (eb *eventBus) Dropped() uint64 {
	return eb.dropped.Load()
}

// Shutdown stops accepting events and waits for workers to drain what is
// already queued. When ctx expires first the workers are cancelled and the
// rest of the queue is lost.
func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.logger.Info(ctx, "Shutting down event bus")

	eb.mu.Lock()
	if !eb.closed {
		eb.closed = true
		for _, t := range eb.topics {
			close(t.queue)
		}
	}
	cancel := eb.cancel
	eb.mu.Unlock()

	if cancel == nil {
		cancel = func() {}
	}
	defer cancel()

	drained := make(chan struct{})
	go func() {
		eb.workers.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		eb.logger.Info(ctx, "Event bus shutdown complete", "dropped", eb.Dropped())
		return nil
	case <-ctx.Done():
		eb.logger.Warn(ctx, "Event bus shutdown timed out, queued events lost")
		return ctx.Err()
	}
}
