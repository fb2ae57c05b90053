package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/config"
	httpx "github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/http"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/http/handlers"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	docH := handlers.NewDocumentHandlers(container.DocSvc)
	jwtMW := middleware.NewAuthMW(container.TokenSvc, container.UserRepo)

	r := httpx.BuildRouter(authH, docH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
