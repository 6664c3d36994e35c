package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// CasbinService wraps the enforcer behind domain.RoleChecker. Policies live
// in a csv file next to the model; there is no policy database.
type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(modelPath, policyPath string) (*CasbinService, error) {
	e, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	return &CasbinService{E: e}, nil
}

// Allowed implements domain.RoleChecker. Roles are namespaced the same way
// policies are written: "role_" + role.
func (s *CasbinService) Allowed(role, path, method string) (bool, error) {
	return s.E.Enforce("role_"+role, path, method)
}
