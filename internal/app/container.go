package app

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/WUNDU/backoffice/domain"
	"github.com/WUNDU/backoffice/internal/config"
	"github.com/WUNDU/backoffice/internal/http/handlers"
	"github.com/WUNDU/backoffice/internal/http/middleware"
	"github.com/WUNDU/backoffice/internal/infrastructure/auth"
	"github.com/WUNDU/backoffice/internal/infrastructure/database"
	"github.com/WUNDU/backoffice/internal/infrastructure/datasets"
	"github.com/WUNDU/backoffice/internal/infrastructure/repositories"
	"github.com/WUNDU/backoffice/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	RedisClient *redis.Client

	// Repositories
	Sessions  domain.SessionStore
	Directory domain.UserDirectory

	// Services
	Credentials domain.CredentialService
	AuthState   *services.AuthBroadcaster
	Audit       domain.AuditRecorder
	Login       domain.LoginController
	Guard       *services.RouteGuardImpl
	Roles       domain.RoleChecker
	Reports     domain.ReportService
	Tickets     domain.TicketService

	// HTTP
	AuthHandlers    *handlers.AuthHandlers
	FinanceHandlers *handlers.FinanceHandlers
	AdminHandlers   *handlers.AdminHandlers
	RouteGuardMW    *middleware.RouteGuardMW
	RoleGuardMW     *middleware.RoleGuardMW
}

// NewContainer creates and initializes all dependencies. The Redis client
// must already answer pings; the broadcaster is seeded from whatever
// session the store still holds.
func NewContainer(cfg *config.Config, rdb *redis.Client) (*Container, error) {
	c := &Container{Config: cfg, RedisClient: rdb}

	c.Sessions = repositories.NewSessionStore(rdb)
	c.Directory = repositories.NewUserDirectory(datasets.Users())

	creds, err := auth.NewCredentialService(cfg.AuthEmail, cfg.AuthPassword, domain.User{
		ID:    cfg.AuthUserID,
		Email: cfg.AuthEmail,
		Name:  cfg.AuthName,
		Role:  cfg.AuthRole,
	}, cfg.AuthLatency)
	if err != nil {
		return nil, err
	}
	c.Credentials = creds

	roles, err := auth.NewCasbinService(cfg.CasbinModelPath, cfg.CasbinPolicyPath)
	if err != nil {
		return nil, err
	}
	c.Roles = roles

	c.AuthState = services.NewAuthBroadcaster()
	if err := c.AuthState.InitFromStore(context.Background(), c.Sessions); err != nil {
		return nil, err
	}

	c.Audit = services.NewAuditRecorder(cfg.AuditCapacity)
	c.Login = services.NewLoginService(c.Credentials, c.Sessions, c.AuthState, c.Audit, cfg.SessionTTL)
	c.Guard = services.NewRouteGuard(c.AuthState, c.Sessions, c.Audit)
	c.Reports = services.NewReportService(
		datasets.RecentTransactions(),
		datasets.Receipts(),
		datasets.UpcomingBills(),
		datasets.BudgetProgress(),
		datasets.MonthlySeries(),
	)
	c.Tickets = services.NewTicketService(datasets.Tickets())

	c.AuthHandlers = handlers.NewAuthHandlers(c.Login, c.Sessions, c.Directory)
	c.FinanceHandlers = handlers.NewFinanceHandlers(c.Reports)
	c.AdminHandlers = handlers.NewAdminHandlers(c.Directory, c.Tickets, c.Audit)
	c.RouteGuardMW = middleware.NewRouteGuardMW(c.Guard)
	c.RoleGuardMW = middleware.NewRoleGuardMW(c.Roles, c.Sessions, c.Directory, c.Audit)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

// NewRedis dials Redis per config and verifies the connection
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return nil, err
	}
	return rdb.Client, nil
}
