package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	noticeHTTP "task-portal/internal/notice/delivery/http"
)

// setupNoticeDomain registers GET /login and GET /api/v1/notice.
func (srv HTTPServer) setupNoticeDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := noticeHTTP.New(srv.l, srv.loginAction)
	noticeHTTP.RegisterRoutes(srv.gin, api, h)

	srv.l.Infof(ctx, "Login notice registered")
	return nil
}
