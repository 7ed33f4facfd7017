package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"task-portal/internal/notice"
	"task-portal/pkg/response"
)

// LoginPage godoc
// @Summary     Login page
// @Description Renders the login page. The inactive-account notice is shown when error=inactive.
// @Tags        Login
// @Produce     html
// @Param       error query string false "Rejection reason set by the identity flow"
// @Success     200 {string} string "HTML page"
// @Router      /login [GET]
func (h *handler) LoginPage(c *gin.Context) {
	f := notice.RenderQuery(c.Request.URL.Query())
	if f.Visible {
		h.l.Infof(c.Request.Context(), "notice.delivery.http.LoginPage: inactive account notice shown")
	}

	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     "login",
		Data: loginPage{
			Notice:      f,
			LoginAction: h.loginAction,
		},
	})
}

// Notice godoc
// @Summary     Login notice
// @Description Returns the login notice for the given error parameter.
// @Tags        Login
// @Produce     json
// @Param       error query string false "Rejection reason set by the identity flow"
// @Success     200 {object} response.Resp{data=noticeResp}
// @Router      /api/v1/notice [GET]
func (h *handler) Notice(c *gin.Context) {
	response.OK(c, toNoticeResp(notice.RenderQuery(c.Request.URL.Query())))
}
