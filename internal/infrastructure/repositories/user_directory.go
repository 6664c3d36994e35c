package repositories

import (
	"context"
	"strings"

	"github.com/WUNDU/backoffice/domain"
)

// UserDirectoryImpl implements domain.UserDirectory over a fixed in-memory
// user set. The back-office has no user database; the directory stands in
// for the identity source's user listing.
type UserDirectoryImpl struct {
	users []domain.User
}

// NewUserDirectory creates a directory over the given users
func NewUserDirectory(users []domain.User) *UserDirectoryImpl {
	return &UserDirectoryImpl{users: users}
}

// FindByID implements domain.UserDirectory
func (d *UserDirectoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	for i := range d.users {
		if d.users[i].ID == id {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByEmail implements domain.UserDirectory
func (d *UserDirectoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// List implements domain.UserDirectory
func (d *UserDirectoryImpl) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out, nil
}
