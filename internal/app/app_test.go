package app

import (
	"context"
	"testing"

	"virtual-interviewer/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestClose_Empty(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}

func TestBuild_DatabaseUnreachable(t *testing.T) {
	cfg := &config.Config{
		DB: config.DBConfig{Host: "127.0.0.1", Port: 1, User: "u", Password: "p", DBName: "db"},
	}

	a, err := Build(context.Background(), cfg, false)
	assert.Nil(t, a)
	assert.ErrorContains(t, err, "failed to connect to database")
}
