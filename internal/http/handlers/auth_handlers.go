package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/domain"
)

// AuthHandlers handles the login, logout and identity HTTP requests
type AuthHandlers struct {
	login     domain.LoginController
	sessions  domain.SessionStore
	directory domain.UserDirectory
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(login domain.LoginController, sessions domain.SessionStore, directory domain.UserDirectory) *AuthHandlers {
	return &AuthHandlers{login: login, sessions: sessions, directory: directory}
}

// LoginPage serves the login surface metadata. The form posts to
// /auth/login with the same field names rendered here.
func (h *AuthHandlers) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":   "login",
		"title":  "Acesse sua conta",
		"action": "/auth/login",
		"fields": []string{"email", "password", "remember-me"},
	})
}

// Login handles the credential form submission. The outcome kind decides
// the status: a redirect on success, a field-error payload otherwise.
func (h *AuthHandlers) Login(c *gin.Context) {
	form := domain.LoginForm{
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		RememberMe: c.PostForm("remember-me") == "on",
	}

	outcome := h.login.Submit(c.Request.Context(), form)
	switch outcome.Kind {
	case domain.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
	case domain.OutcomeInvalid:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  outcome.Error,
			"fields": domain.ClassifyAuthError(outcome.Error),
		})
	case domain.OutcomeRejected:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":  outcome.Error,
			"fields": domain.ClassifyAuthError(outcome.Error),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  outcome.Error,
			"fields": domain.ClassifyAuthError(outcome.Error),
		})
	}
}

// Logout clears the session and sends the operator back to the login page
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.login.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// Me returns the operator behind the current session
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, err := h.sessions.UserID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
		return
	}

	user, err := h.directory.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown session operator"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
