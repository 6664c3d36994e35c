package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"
	SessionExpiredEvent   AuditEventType = "SESSION_EXPIRED"

	// Routing events
	RouteRedirectEvent AuditEventType = "ROUTE_REDIRECT"
	AccessDeniedEvent  AuditEventType = "ACCESS_DENIED"
)

// AuditEvent represents a security-relevant event. Events feed both the
// audit log lines and the security panel's event listing.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    string         `json:"user_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Path      string         `json:"path,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
}

// NewAuditEvent creates an audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithUser sets the subject of the event
func (e *AuditEvent) WithUser(userID, email string) *AuditEvent {
	e.UserID = userID
	e.Email = email
	return e
}

// WithPath sets the request path the event relates to
func (e *AuditEvent) WithPath(path string) *AuditEvent {
	e.Path = path
	return e
}

// WithError marks the event as failed and records the cause
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithMessage marks the event as failed with a plain message
func (e *AuditEvent) WithMessage(msg string) *AuditEvent {
	e.Success = false
	e.ErrorMsg = msg
	return e
}
