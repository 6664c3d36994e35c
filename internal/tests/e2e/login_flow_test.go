package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WUNDU/backoffice/internal/app"
	"github.com/WUNDU/backoffice/internal/config"
	httpx "github.com/WUNDU/backoffice/internal/http"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{
		AuthEmail:        "test@example.com",
		AuthPassword:     "password123",
		AuthUserID:       "123",
		AuthName:         "Test User",
		AuthRole:         "user",
		CasbinModelPath:  "../../../config/casbin_model.conf",
		CasbinPolicyPath: "../../../config/casbin_policy.csv",
		AuditCapacity:    64,
	}

	c, err := app.NewContainer(cfg, rdb)
	require.NoError(t, err)

	r := httpx.BuildRouter(c.AuthHandlers, c.FinanceHandlers, c.AdminHandlers, c.RouteGuardMW, c.RoleGuardMW)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// Redirects are the assertions here, so the client must not follow them.
func newTestClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient()

	get := func(path string) *http.Response {
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		return resp
	}
	postForm := func(path string, values url.Values) *http.Response {
		resp, err := client.Post(srv.URL+path, "application/x-www-form-urlencoded", strings.NewReader(values.Encode()))
		require.NoError(t, err)
		return resp
	}

	t.Run("health is reachable without a session", func(t *testing.T) {
		resp := get("/health")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("protected paths redirect to login", func(t *testing.T) {
		for _, path := range []string{"/dashboard", "/dashboard/transactions", "/dashboard/tickets"} {
			resp := get(path)
			resp.Body.Close()
			require.Equal(t, http.StatusFound, resp.StatusCode, path)
			assert.Equal(t, "/login", resp.Header.Get("Location"), path)
		}
	})

	t.Run("wrong credentials are rejected", func(t *testing.T) {
		resp := postForm("/auth/login", url.Values{
			"email":    {"test@example.com"},
			"password": {"nope"},
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid credentials open a session", func(t *testing.T) {
		resp := postForm("/auth/login", url.Values{
			"email":       {"test@example.com"},
			"password":    {"password123"},
			"remember-me": {"on"},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	})

	t.Run("dashboard serves once authenticated", func(t *testing.T) {
		resp := get("/dashboard")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("login page redirects authenticated operators away", func(t *testing.T) {
		for _, path := range []string{"/login", "/"} {
			resp := get(path)
			resp.Body.Close()
			require.Equal(t, http.StatusFound, resp.StatusCode, path)
			assert.Equal(t, "/dashboard", resp.Header.Get("Location"), path)
		}
	})

	t.Run("me resolves the session operator", func(t *testing.T) {
		resp := get("/auth/me")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "test@example.com", body.Data.Email)
		assert.Equal(t, "user", body.Data.Role)
	})

	t.Run("admin surfaces deny the user role", func(t *testing.T) {
		for _, path := range []string{"/dashboard/access-management/users", "/dashboard/security/events"} {
			resp := get(path)
			resp.Body.Close()
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		}
	})

	t.Run("logout closes the session", func(t *testing.T) {
		resp := postForm("/auth/logout", url.Values{})
		defer resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		again := get("/dashboard")
		again.Body.Close()
		require.Equal(t, http.StatusFound, again.StatusCode)
		assert.Equal(t, "/login", again.Header.Get("Location"))
	})
}

func TestRepeatLoginOverwritesSession(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient()

	resp, err := client.Post(srv.URL+"/auth/login", "application/x-www-form-urlencoded",
		strings.NewReader(url.Values{"email": {"test@example.com"}, "password": {"password123"}}.Encode()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// A second login overwrites the session rather than stacking one.
	resp, err = client.Post(srv.URL+"/auth/login", "application/x-www-form-urlencoded",
		strings.NewReader(url.Values{"email": {"test@example.com"}, "password": {"password123"}}.Encode()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	me, err := client.Get(srv.URL + "/auth/me")
	require.NoError(t, err)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)
}
