package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/internal/config"
	httpx "github.com/WUNDU/backoffice/internal/http"
)

// Run wires the full application and serves it
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	rdb, err := NewRedis(context.Background(), cfg)
	if err != nil {
		return err
	}

	c, err := NewContainer(cfg, rdb)
	if err != nil {
		return err
	}
	defer c.Close()

	// Every auth flip lands in the log, whatever triggered it.
	c.AuthState.Subscribe(func(authenticated bool) {
		log.Printf("AUTH_STATE: authenticated=%v", authenticated)
	})

	r := httpx.BuildRouter(c.AuthHandlers, c.FinanceHandlers, c.AdminHandlers, c.RouteGuardMW, c.RoleGuardMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
