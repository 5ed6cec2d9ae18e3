package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/pkg/logger"
)

// AuditConsumer writes audit events to the audit repository. Redelivered
// events are absorbed by the repository's idempotency on EventID.
type AuditConsumer struct {
	repo        domain.AuditRepository
	logger      *logger.Logger
	workerCount int
}

func NewAuditConsumer(repo domain.AuditRepository, log *logger.Logger, workerCount int) *AuditConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &AuditConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *AuditConsumer) Consume(ctx context.Context, event Event) error {
	payload, ok := event.Payload.(AuditEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for audit event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type %T", event.Payload)
	}

	entry := payload.Entry
	entry.EventID = event.ID
	if entry.UserID != nil {
		ctx = logger.WithUserID(ctx, entry.UserID.String())
	}

	if err := ac.repo.AddAuditEntry(ctx, entry); err != nil {
		ac.logger.Error(ctx, "Failed to store audit entry",
			"event_id", event.ID,
			"action", entry.Action,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Audit entry stored",
		"event_id", event.ID,
		"action", entry.Action,
	)
	return nil
}

func (ac *AuditConsumer) GetWorkerCount() int {
	return ac.workerCount
}

// AuditPublisher implements domain.AuditPublisher on top of an EventBus.
type AuditPublisher struct {
	bus EventBus
	now func() time.Time
}

func NewAuditPublisher(bus EventBus) *AuditPublisher {
	return &AuditPublisher{bus: bus, now: time.Now}
}

func (p *AuditPublisher) PublishAudit(ctx context.Context, entry domain.AuditEntry) error {
	id := entry.EventID
	if id == "" {
		id = uuid.New().String()
	}
	now := p.now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}

	return p.bus.Publish(ctx, Event{
		ID:        id,
		Type:      EventTypeVerbAudit,
		Payload:   AuditEvent{Entry: entry},
		Timestamp: now,
	})
}
