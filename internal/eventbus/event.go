package eventbus

import (
	"time"

	"github.com/grachmannico95/verbs-service/internal/domain"
)

type EventType string

const (
	EventTypeVerbAudit EventType = "verb_audit"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type AuditEvent struct {
	Entry domain.AuditEntry `json:"entry"`
}
