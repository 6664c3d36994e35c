package mocks

import (
	"context"
	"time"

	"github.com/WUNDU/backoffice/domain"
)

// MockSessionStore implements domain.SessionStore for testing
type MockSessionStore struct {
	SetFunc    func(ctx context.Context, userID string, ttl time.Duration) error
	ClearFunc  func(ctx context.Context) error
	ValidFunc  func(ctx context.Context) (bool, error)
	UserIDFunc func(ctx context.Context) (string, error)
}

// NewMockSessionStore creates a MockSessionStore with default behaviors
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Set persists a session
func (m *MockSessionStore) Set(ctx context.Context, userID string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, ttl)
	}
	// Default behavior: success
	return nil
}

// Clear removes the session
func (m *MockSessionStore) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// Valid reports session validity
func (m *MockSessionStore) Valid(ctx context.Context) (bool, error) {
	if m.ValidFunc != nil {
		return m.ValidFunc(ctx)
	}
	// Default behavior: no session
	return false, nil
}

// UserID returns the stored token value
func (m *MockSessionStore) UserID(ctx context.Context) (string, error) {
	if m.UserIDFunc != nil {
		return m.UserIDFunc(ctx)
	}
	// Default behavior: no session
	return "", domain.ErrSessionNotFound
}
