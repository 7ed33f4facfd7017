package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
	profileHTTP "task-portal/internal/profile/delivery/http"
)

// setupProfileDomain registers GET /internal/v1/profiles/:id.
func (srv HTTPServer) setupProfileDomain(ctx context.Context, internal *gin.RouterGroup, mw middleware.Middleware) error {
	h := profileHTTP.New(srv.l, srv.profileUC)
	profileHTTP.RegisterRoutes(internal, h, mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}
