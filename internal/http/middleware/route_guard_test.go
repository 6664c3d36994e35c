package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/internal/services"
)

type stubEvaluator struct {
	target   string
	redirect bool
	lastPath string
}

func (s *stubEvaluator) Evaluate(ctx context.Context, path string) (string, bool) {
	s.lastPath = path
	return s.target, s.redirect
}

func newGuardedRouter(eval GuardEvaluator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRouteGuardMW(eval).Guard())
	r.GET("/dashboard", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestRouteGuardMW_Redirects(t *testing.T) {
	eval := &stubEvaluator{target: "/login", redirect: true}
	r := newGuardedRouter(eval)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, want /login", loc)
	}
	if eval.lastPath != "/dashboard" {
		t.Fatalf("evaluated path = %q, want /dashboard", eval.lastPath)
	}
}

func TestRouteGuardMW_PassesThrough(t *testing.T) {
	r := newGuardedRouter(&stubEvaluator{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

// The middleware evaluates the raw request path, so the guard's path rules
// see exactly what the operator typed.
func TestRouteGuardMW_UsesRequestPath(t *testing.T) {
	eval := &stubEvaluator{}
	r := newGuardedRouter(eval)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=receipts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if eval.lastPath != "/dashboard" {
		t.Fatalf("evaluated path = %q, want /dashboard", eval.lastPath)
	}
}

var _ GuardEvaluator = (*services.RouteGuardImpl)(nil)
