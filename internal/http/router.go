package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/internal/http/handlers"
	"github.com/WUNDU/backoffice/internal/http/middleware"
)

// BuildRouter assembles the full route tree. The route guard runs on every
// request; the role guard additionally gates the admin-only surfaces.
func BuildRouter(ah *handlers.AuthHandlers, fh *handlers.FinanceHandlers, adh *handlers.AdminHandlers, guard *middleware.RouteGuardMW, roles *middleware.RoleGuardMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), guard.Guard())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// The guard redirects authenticated operators off both of these.
	r.GET("/", ah.LoginPage)
	r.GET("/login", ah.LoginPage)

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.GET("/me", ah.Me)

	dash := r.Group("/dashboard")
	dash.GET("", fh.Overview)
	dash.GET("/transactions", fh.Transactions)
	dash.GET("/receipts", fh.Receipts)
	dash.GET("/expenses", fh.Expenses)
	dash.GET("/reports/summary", fh.ReportSummary)
	dash.GET("/bills", fh.Bills)
	dash.GET("/budgets", fh.Budgets)
	dash.GET("/tickets", adh.Tickets)
	dash.PATCH("/tickets/:id/status", adh.UpdateTicketStatus)

	adm := dash.Group("/access-management").Use(roles.Enforce())
	adm.GET("/users", adh.Users)

	sec := dash.Group("/security").Use(roles.Enforce())
	sec.GET("/events", adh.SecurityEvents)

	return r
}
