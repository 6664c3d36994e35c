package datasets

import "github.com/WUNDU/backoffice/domain"

var users = []domain.User{
	{ID: "1", Email: "admin@exemplo.com", Name: "Administrador", Role: "admin"},
	{ID: "2", Email: "joao.s@example.com", Name: "João Silva", Role: "manager"},
	{ID: "3", Email: "maria.s@example.com", Name: "Maria Santos", Role: "user"},
	{ID: "4", Email: "pedro.c@example.com", Name: "Pedro Costa", Role: "user"},
	{ID: "123", Email: "test@example.com", Name: "Test User", Role: "user"},
}

// Users returns the back-office operator directory
func Users() []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}
