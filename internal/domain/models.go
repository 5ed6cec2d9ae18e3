package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Verb struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_verbs_name_lower,expression:LOWER(name)" json:"name"`
	Translation string         `gorm:"type:varchar(255)" json:"translation"`
	Example     string         `gorm:"type:varchar(1024)" json:"example"`
	CreatedByID *uuid.UUID     `gorm:"type:uuid" json:"created_by_id,omitempty"`
	UpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// VerbPage is one page of live verbs along with the paging actually applied.
type VerbPage struct {
	Items   []Verb `json:"items"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Total   int64  `json:"total"`
}

// VerbInput carries the writable fields of a verb, both for JSON requests
// and for rows mapped out of an import file.
type VerbInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Translation string `json:"translation" validate:"max=255"`
	Example     string `json:"example" validate:"max=1024"`
}

// User is the acting identity attached to writes. A nil ID is anonymous.
type User struct {
	ID uuid.UUID `json:"id"`
}

func (u User) IDPtr() *uuid.UUID {
	if u.ID == uuid.Nil {
		return nil
	}
	id := u.ID
	return &id
}

type Field struct {
	Key   string
	Value string
}

// Row is one CSV data line as an ordered column -> value mapping.
type Row []Field

// Get returns the value stored under exactly key. With duplicate headers the
// last column wins.
func (r Row) Get(key string) (string, bool) {
	value, found := "", false
	for _, f := range r {
		if f.Key == key {
			value, found = f.Value, true
		}
	}
	return value, found
}

// Lookup is Get with case-insensitive, whitespace-trimmed key matching.
func (r Row) Lookup(key string) (string, bool) {
	key = strings.TrimSpace(key)
	value, found := "", false
	for _, f := range r {
		if strings.EqualFold(strings.TrimSpace(f.Key), key) {
			value, found = f.Value, true
		}
	}
	return value, found
}

func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}

type ImportResult struct {
	CreatedCount  int    `json:"created_count"`
	UpdatedCount  int    `json:"updated_count"`
	EnrichedCount int    `json:"enriched_count"`
	SkippedCount  int    `json:"skipped_count"`
	EnrichedVerbs []Verb `json:"enriched_verbs"`
}

type ImportPhase string

const (
	ImportPhaseStarted    ImportPhase = "started"
	ImportPhaseUploaded   ImportPhase = "uploaded"
	ImportPhaseDecoded    ImportPhase = "decoded"
	ImportPhaseParsed     ImportPhase = "parsed"
	ImportPhasePersisted  ImportPhase = "persisted"
	ImportPhaseCommitted  ImportPhase = "committed"
	ImportPhaseFailed     ImportPhase = "failed"
	ImportPhaseRolledBack ImportPhase = "rolled_back"
)

type AuditAction string

const (
	AuditActionCreated  AuditAction = "created"
	AuditActionUpdated  AuditAction = "updated"
	AuditActionDeleted  AuditAction = "deleted"
	AuditActionImported AuditAction = "imported"
)

type AuditEntry struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	EventID   string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"event_id"`
	Action    AuditAction `gorm:"type:varchar(32);not null" json:"action"`
	UserID    *uuid.UUID  `gorm:"type:uuid" json:"user_id,omitempty"`
	VerbIDs   string      `gorm:"type:text" json:"verb_ids"`
	Summary   string      `gorm:"type:text" json:"summary"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditEntry) TableName() string {
	return "verb_audit_log"
}
