package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"task-portal/internal/notice"
	"task-portal/pkg/log"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, r.Group("/api/v1"), New(log.NewNop(), ""))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestLoginPage(t *testing.T) {
	r := setupRouter()

	t.Run("inactive shows the notice", func(t *testing.T) {
		w := get(r, "/login?error=inactive")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `role="alert"`)
		assert.Contains(t, w.Body.String(), "Seu acesso está pendente de aprovação")
		assert.Contains(t, w.Body.String(), `action="/auth/login"`)
	})

	for _, target := range []string{"/login", "/login?error=", "/login?error=Inactive", "/login?error=expired"} {
		t.Run(target, func(t *testing.T) {
			w := get(r, target)
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), `role="alert"`)
		})
	}
}

func TestLoginPageConfiguredAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, r.Group("/api/v1"), New(log.NewNop(), "https://id.example.com/login"))

	w := get(r, "/login")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="https://id.example.com/login"`)
}

func TestLoginPageLogsInactiveNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	RegisterRoutes(r, r.Group("/api/v1"), New(log.New(zap.New(core)), ""))

	get(r, "/login?error=expired")
	assert.Zero(t, logs.Len())

	get(r, "/login?error=inactive")
	assert.Equal(t, 1, logs.FilterMessageSnippet("inactive account notice").Len())
}

type noticeEnvelope struct {
	ErrorCode int        `json:"error_code"`
	Data      noticeResp `json:"data"`
}

func TestNotice(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		target string
		want   noticeResp
	}{
		{target: "/api/v1/notice?error=inactive", want: noticeResp{Visible: true, Message: notice.InactiveMessage}},
		{target: "/api/v1/notice", want: noticeResp{}},
		{target: "/api/v1/notice?error=locked", want: noticeResp{}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(r, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var env noticeEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, 0, env.ErrorCode)
			assert.Equal(t, tt.want, env.Data)
		})
	}
}
