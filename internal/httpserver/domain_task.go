package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
	taskHTTP "task-portal/internal/task/delivery/http"
)

// setupTaskDomain registers POST /internal/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, internal *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(internal, h, mw)

	srv.l.Infof(ctx, "Task domain registered (store: %s)", srv.taskDriver)
	return nil
}
