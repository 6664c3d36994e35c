package domain

import (
	"context"
	"time"
)

// SessionStore owns the persisted session pair. It is the sole durable
// owner of the session token and outlives any in-memory state.
type SessionStore interface {
	// Set persists the token and its expiry, overwriting any prior session
	// unconditionally. A non-positive ttl falls back to DefaultSessionTTL.
	Set(ctx context.Context, userID string, ttl time.Duration) error
	// Clear removes both keys. Idempotent: clearing an empty store is a no-op.
	Clear(ctx context.Context) error
	// Valid reports whether a non-expired session exists. Detecting an
	// expired or malformed session clears the store as a side effect.
	Valid(ctx context.Context) (bool, error)
	// UserID returns the stored token value, or ErrSessionNotFound.
	UserID(ctx context.Context) (string, error)
}

// CredentialService validates a credential pair against the identity
// source. A nil User with a nil error means the credentials were rejected;
// a non-nil error signals an unexpected fault, never a plain rejection.
type CredentialService interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

// AuthState is the process-wide authentication signal: one writer API,
// many readers, synchronous fan-out to subscribers.
type AuthState interface {
	IsAuthenticated() bool
	Set(authenticated bool)
	// Subscribe registers fn for synchronous notification on every Set.
	// The returned function unsubscribes.
	Subscribe(fn func(authenticated bool)) (unsubscribe func())
}

// LoginController drives the form submission state machine
type LoginController interface {
	Submit(ctx context.Context, form LoginForm) LoginOutcome
	Logout(ctx context.Context) error
	State() NavState
	InFlightForm() *LoginForm
}

// UserDirectory resolves back-office operators
type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

// AuditRecorder collects security-relevant events
type AuditRecorder interface {
	Record(event *AuditEvent)
	Recent(n int) []AuditEvent
}

// RoleChecker answers whether a role may perform an action on a resource
type RoleChecker interface {
	Allowed(role, path, method string) (bool, error)
}

// ReportService aggregates the read-only financial datasets
type ReportService interface {
	Transactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	Receipts(ctx context.Context) ([]Receipt, error)
	Expenses(ctx context.Context) ([]Transaction, error)
	Bills(ctx context.Context) ([]Bill, error)
	Budgets(ctx context.Context) ([]Budget, error)
	Summary(ctx context.Context) (*ReportSummary, error)
}

// TicketService manages the support ticket set
type TicketService interface {
	List(ctx context.Context, filter TicketFilter) ([]Ticket, error)
	UpdateStatus(ctx context.Context, id string, status TicketStatus) (*Ticket, error)
}
