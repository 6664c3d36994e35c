package services

import (
	"log"
	"sync"

	"github.com/WUNDU/backoffice/domain"
)

// AuditRecorderImpl implements domain.AuditRecorder with a bounded
// in-memory ring. Every recorded event also emits an audit log line; the
// retained events feed the security panel.
type AuditRecorderImpl struct {
	mu       sync.Mutex
	events   []domain.AuditEvent
	capacity int
}

// NewAuditRecorder creates a recorder retaining at most capacity events
func NewAuditRecorder(capacity int) *AuditRecorderImpl {
	if capacity <= 0 {
		capacity = 256
	}
	return &AuditRecorderImpl{capacity: capacity}
}

// Record implements domain.AuditRecorder
func (r *AuditRecorderImpl) Record(event *domain.AuditEvent) {
	if event == nil {
		return
	}

	log.Printf("%s: user_id=%s email=%s path=%s success=%v error=%q timestamp=%s",
		event.EventType, event.UserID, event.Email, event.Path,
		event.Success, event.ErrorMsg, event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
}

// Recent implements domain.AuditRecorder, newest first. n <= 0 returns all
// retained events.
func (r *AuditRecorderImpl) Recent(n int) []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	out := make([]domain.AuditEvent, 0, n)
	for i := len(r.events) - 1; i >= len(r.events)-n; i-- {
		out = append(out, r.events[i])
	}
	return out
}
