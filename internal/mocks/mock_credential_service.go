package mocks

import (
	"context"

	"github.com/WUNDU/backoffice/domain"
)

// MockCredentialService implements domain.CredentialService for testing
type MockCredentialService struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (*domain.User, error)
}

// NewMockCredentialService creates a MockCredentialService with default behaviors
func NewMockCredentialService() *MockCredentialService {
	return &MockCredentialService{}
}

// Authenticate validates a credential pair
func (m *MockCredentialService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	// Default behavior: rejection
	return nil, nil
}
