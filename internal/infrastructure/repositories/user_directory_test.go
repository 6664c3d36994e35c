package repositories

import (
	"context"
	"testing"

	"github.com/WUNDU/backoffice/domain"
)

func TestUserDirectoryImpl_Find(t *testing.T) {
	ctx := context.Background()
	dir := NewUserDirectory([]domain.User{
		{ID: "1", Email: "admin@exemplo.com", Name: "Administrador", Role: "admin"},
		{ID: "123", Email: "test@example.com", Name: "Test User", Role: "user"},
	})

	user, err := dir.FindByID(ctx, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != "user" {
		t.Errorf("expected role user, got %q", user.Role)
	}

	user, err = dir.FindByEmail(ctx, "ADMIN@exemplo.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "1" {
		t.Errorf("expected admin id 1, got %q", user.ID)
	}

	if _, err := dir.FindByID(ctx, "999"); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	users, err := dir.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
