package mocks

import (
	"context"

	"github.com/WUNDU/backoffice/domain"
)

// MockUserDirectory implements domain.UserDirectory for testing
type MockUserDirectory struct {
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListFunc        func(ctx context.Context) ([]domain.User, error)
}

// NewMockUserDirectory creates a MockUserDirectory with default behaviors
func NewMockUserDirectory() *MockUserDirectory {
	return &MockUserDirectory{}
}

// FindByID resolves an operator by id
func (m *MockUserDirectory) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmail resolves an operator by email
func (m *MockUserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// List returns all known operators
func (m *MockUserDirectory) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty directory
	return nil, nil
}
