package services

import (
	"context"
	"strings"

	"github.com/WUNDU/backoffice/domain"
)

// Route constants the guard decides between
const (
	LoginPath     = "/login"
	RootPath      = "/"
	ProtectedRoot = "/dashboard"
)

// Decide is the pure guard transition: given the authentication flag and
// the current path, it returns the redirect target, or redirect=false for
// no action. It is deliberately free of any transport concern.
func Decide(authenticated bool, path string) (target string, redirect bool) {
	if authenticated {
		if path == LoginPath || path == RootPath {
			return ProtectedRoot, true
		}
		return "", false
	}
	if strings.HasPrefix(path, ProtectedRoot) {
		return LoginPath, true
	}
	return "", false
}

// RouteGuardImpl evaluates Decide against live state. Both the broadcaster
// and the store are consulted: in-memory state may lag a fresh load, and
// the store check also clears an expired session on the way through.
type RouteGuardImpl struct {
	auth     domain.AuthState
	sessions domain.SessionStore
	audit    domain.AuditRecorder
}

// NewRouteGuard creates the guard
func NewRouteGuard(auth domain.AuthState, sessions domain.SessionStore, audit domain.AuditRecorder) *RouteGuardImpl {
	return &RouteGuardImpl{auth: auth, sessions: sessions, audit: audit}
}

// Authenticated reports the freshest authentication answer available
func (g *RouteGuardImpl) Authenticated(ctx context.Context) bool {
	if g.auth.IsAuthenticated() {
		// re-check the store so a session that expired since the flag was
		// set is caught and cleared here rather than on the next login
		valid, err := g.sessions.Valid(ctx)
		if err == nil && !valid {
			g.auth.Set(false)
			g.audit.Record(domain.NewAuditEvent(domain.SessionExpiredEvent).
				WithError(domain.ErrSessionExpired))
			return false
		}
		return true
	}
	valid, err := g.sessions.Valid(ctx)
	if err != nil {
		return false
	}
	return valid
}

// Evaluate runs one guard cycle for the given path
func (g *RouteGuardImpl) Evaluate(ctx context.Context, path string) (target string, redirect bool) {
	target, redirect = Decide(g.Authenticated(ctx), path)
	if redirect {
		g.audit.Record(domain.NewAuditEvent(domain.RouteRedirectEvent).WithPath(path))
	}
	return target, redirect
}
