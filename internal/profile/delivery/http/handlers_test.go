package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-portal/internal/middleware"
	"task-portal/internal/model"
	"task-portal/internal/profile"
	"task-portal/pkg/log"
)

type mockUseCase struct {
	profile model.UserProfile
	err     error
	gotID   string
	gotSc   model.Scope
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.UserProfile, error) {
	m.gotID = id
	m.gotSc = sc
	return m.profile, m.err
}

const testKey = "k"

func serve(uc profile.UseCase, path, key string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{InternalKey: testKey, RateLimitPerMin: 6000})
	RegisterRoutes(r.Group("/internal/v1"), New(log.NewNop(), uc), mw)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if key != "" {
		req.Header.Set(middleware.InternalKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDetail(t *testing.T) {
	uc := &mockUseCase{profile: model.UserProfile{ID: "u1", FullName: "Ana Souza", Role: model.RoleAdmin}}
	w := serve(uc, "/internal/v1/profiles/u1", testKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.gotID)
	assert.Equal(t, "internal", uc.gotSc.CallerID)

	var env struct {
		Data profileResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, profileResp{ID: "u1", FullName: "Ana Souza", Role: "admin"}, env.Data)
}

func TestDetailErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: profile.ErrProfileNotFound, want: http.StatusNotFound},
		{name: "invalid id", err: profile.ErrInvalidID, want: http.StatusBadRequest},
		{name: "unknown role", err: model.ErrInvalidRole, want: http.StatusUnprocessableEntity},
		{name: "store down", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&mockUseCase{err: tt.err}, "/internal/v1/profiles/u1", testKey)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestDetailRequiresInternalKey(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(uc, "/internal/v1/profiles/u1", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, uc.gotID)
}
