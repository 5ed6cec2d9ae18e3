package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/internal/storage"
	"github.com/grachmannico95/verbs-service/mocks"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	mu      sync.Mutex
	events  []Event
	err     error
	delay   time.Duration
	workers int
}

func (c *recordingConsumer) Consume(ctx context.Context, event Event) error {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return c.err
}

func (c *recordingConsumer) GetWorkerCount() int {
	return c.workers
}

func (c *recordingConsumer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestEventBus_PublishDelivers(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10})
	consumer := &recordingConsumer{workers: 2}

	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer bus.Shutdown(context.Background())

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: uuid.New().String(), Type: EventTypeVerbAudit}))
	}

	assert.Eventually(t, func() bool { return consumer.count() == 5 }, time.Second, 10*time.Millisecond)
}

func TestEventBus_FailedEventIsNotRetried(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10})
	consumer := &recordingConsumer{workers: 1, err: errors.New("boom")}

	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, consumer))
	require.NoError(t, bus.Start(context.Background()))

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "evt-1", Type: EventTypeVerbAudit}))
	require.NoError(t, bus.Shutdown(context.Background()))

	assert.Equal(t, 1, consumer.count())
}

func TestEventBus_ShutdownDrainsQueue(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10})
	consumer := &recordingConsumer{workers: 1, delay: 5 * time.Millisecond}

	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, consumer))
	require.NoError(t, bus.Start(context.Background()))

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: uuid.New().String(), Type: EventTypeVerbAudit}))
	}

	require.NoError(t, bus.Shutdown(context.Background()))
	assert.Equal(t, 5, consumer.count())

	err := bus.Publish(context.Background(), Event{ID: "late", Type: EventTypeVerbAudit})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestEventBus_ShutdownTimeout(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10})
	consumer := &recordingConsumer{workers: 1, delay: 200 * time.Millisecond}

	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, consumer))
	require.NoError(t, bus.Start(context.Background()))

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: uuid.New().String(), Type: EventTypeVerbAudit}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := bus.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEventBus_PublishWithoutSubscriber(t *testing.T) {
	bus := New(logger.NewNop(), nil)

	err := bus.Publish(context.Background(), Event{ID: "evt-1", Type: EventTypeVerbAudit})
	assert.NoError(t, err)
}

func TestEventBus_FullChannelDropsEvent(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 1})
	consumer := &recordingConsumer{workers: 1}

	// Not started, so nothing drains the channel.
	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, consumer))

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "evt-1", Type: EventTypeVerbAudit}))
	require.NoError(t, bus.Publish(context.Background(), Event{ID: "evt-2", Type: EventTypeVerbAudit}))
	assert.Equal(t, uint64(1), bus.Dropped())

	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Shutdown(context.Background()))
	assert.Equal(t, 1, consumer.count())
}

func TestEventBus_ClosedBusRejectsSubscribeAndStart(t *testing.T) {
	bus := New(logger.NewNop(), nil)
	require.NoError(t, bus.Shutdown(context.Background()))

	assert.ErrorIs(t, bus.Subscribe(EventTypeVerbAudit, &recordingConsumer{workers: 1}), ErrBusClosed)
	assert.ErrorIs(t, bus.Start(context.Background()), ErrBusClosed)
}

func TestAuditConsumer_StoresEntry(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	consumer := NewAuditConsumer(repo, logger.NewNop(), 0)
	userID := uuid.New()

	repo.EXPECT().
		AddAuditEntry(mock.Anything, mock.MatchedBy(func(e domain.AuditEntry) bool {
			return e.EventID == "evt-1" && e.Action == domain.AuditActionImported && *e.UserID == userID
		})).
		Return(nil).
		Once()

	err := consumer.Consume(context.Background(), Event{
		ID:      "evt-1",
		Type:    EventTypeVerbAudit,
		Payload: AuditEvent{Entry: domain.AuditEntry{Action: domain.AuditActionImported, UserID: &userID}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, consumer.GetWorkerCount())
}

func TestAuditConsumer_InvalidPayload(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	consumer := NewAuditConsumer(repo, logger.NewNop(), 1)

	err := consumer.Consume(context.Background(), Event{ID: "evt-1", Payload: "nope"})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "AddAuditEntry", mock.Anything, mock.Anything)
}

func TestAuditConsumer_RepositoryError(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	consumer := NewAuditConsumer(repo, logger.NewNop(), 1)
	repoErr := errors.New("insert failed")

	repo.EXPECT().AddAuditEntry(mock.Anything, mock.Anything).Return(repoErr).Once()

	err := consumer.Consume(context.Background(), Event{ID: "evt-1", Payload: AuditEvent{}})

	assert.ErrorIs(t, err, repoErr)
}

func TestAuditPublisher_EndToEnd(t *testing.T) {
	store := storage.NewMemoryStore(nil)
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10})
	require.NoError(t, bus.Subscribe(EventTypeVerbAudit, NewAuditConsumer(store, logger.NewNop(), 2)))
	require.NoError(t, bus.Start(context.Background()))

	publisher := NewAuditPublisher(bus)
	entry := domain.AuditEntry{EventID: "evt-1", Action: domain.AuditActionCreated, Summary: "run"}

	require.NoError(t, publisher.PublishAudit(context.Background(), entry))
	// Duplicate delivery of the same event id is absorbed.
	require.NoError(t, publisher.PublishAudit(context.Background(), entry))
	require.NoError(t, bus.Shutdown(context.Background()))

	entries, err := store.ListAuditEntries(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].Summary)
	assert.False(t, entries[0].CreatedAt.IsZero())
}
