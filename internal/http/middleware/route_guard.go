package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GuardEvaluator is the slice of the route guard the middleware needs
type GuardEvaluator interface {
	Evaluate(ctx context.Context, path string) (target string, redirect bool)
}

// RouteGuardMW wraps the route guard for middleware
type RouteGuardMW struct {
	guard GuardEvaluator
}

// NewRouteGuardMW creates new route guard middleware wrapper
func NewRouteGuardMW(guard GuardEvaluator) *RouteGuardMW {
	return &RouteGuardMW{guard: guard}
}

// Guard returns the guard middleware function. It runs on every request:
// paths the guard has no opinion on pass through untouched, the rest get
// a redirect and the handler chain is aborted before any handler runs.
func (mw *RouteGuardMW) Guard() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		target, redirect := mw.guard.Evaluate(c.Request.Context(), c.Request.URL.Path)
		if redirect {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	})
}
