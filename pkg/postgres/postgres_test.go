package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-portal/pkg/postgres"
)

func TestDSN(t *testing.T) {
	cfg := postgres.Config{Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "portal"}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=portal sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}
