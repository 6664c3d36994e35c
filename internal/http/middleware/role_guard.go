package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/domain"
)

// RoleGuardMW wraps the role checker for middleware. It resolves the
// operator behind the current session and asks the checker whether that
// operator's role may reach the requested route.
type RoleGuardMW struct {
	checker   domain.RoleChecker
	sessions  domain.SessionStore
	directory domain.UserDirectory
	audit     domain.AuditRecorder
}

// NewRoleGuardMW creates new role guard middleware wrapper
func NewRoleGuardMW(checker domain.RoleChecker, sessions domain.SessionStore, directory domain.UserDirectory, audit domain.AuditRecorder) *RoleGuardMW {
	return &RoleGuardMW{checker: checker, sessions: sessions, directory: directory, audit: audit}
}

// Enforce returns the role authorization middleware
func (mw *RoleGuardMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		userID, err := mw.sessions.UserID(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}

		user, err := mw.directory.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown session operator"})
			c.Abort()
			return
		}

		// Match against the route pattern so parameterized routes enforce
		// the same policy line for every parameter value.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := mw.checker.Allowed(user.Role, path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			mw.audit.Record(domain.NewAuditEvent(domain.AccessDeniedEvent).
				WithUser(user.ID, user.Email).
				WithPath(c.Request.URL.Path).
				WithError(domain.ErrInsufficientRole))
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	})
}
