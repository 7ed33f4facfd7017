package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-portal/internal/model"
)

func TestParseRole(t *testing.T) {
	for _, r := range model.Roles {
		got, err := model.ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	for _, bad := range []string{"", "Admin", "owner", " member"} {
		_, err := model.ParseRole(bad)
		assert.True(t, errors.Is(err, model.ErrInvalidRole), "role %q", bad)
	}
}

func TestUserProfileJSON(t *testing.T) {
	var p model.UserProfile
	err := json.Unmarshal([]byte(`{"id":"u-1","full_name":"Ana Souza","role":"manager"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, model.UserProfile{ID: "u-1", FullName: "Ana Souza", Role: model.RoleManager}, p)

	err = json.Unmarshal([]byte(`{"id":"u-2","full_name":"Rui","role":"superuser"}`), &p)
	assert.True(t, errors.Is(err, model.ErrInvalidRole))

	out, err := json.Marshal(model.UserProfile{ID: "u-1", FullName: "Ana Souza", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u-1","full_name":"Ana Souza","role":"admin"}`, string(out))
}

func TestRoleScan(t *testing.T) {
	var r model.Role
	require.NoError(t, r.Scan("member"))
	assert.Equal(t, model.RoleMember, r)

	require.NoError(t, r.Scan([]byte("admin")))
	assert.Equal(t, model.RoleAdmin, r)

	assert.ErrorIs(t, r.Scan("guest"), model.ErrInvalidRole)
	assert.ErrorIs(t, r.Scan(42), model.ErrInvalidRole)

	v, err := model.RoleManager.Value()
	require.NoError(t, err)
	assert.Equal(t, "manager", v)
}
