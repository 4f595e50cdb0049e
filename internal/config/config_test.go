package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QUIZ_ADDR", "")
	t.Setenv("QUIZ_ALLOWED_ORIGINS", "")
	t.Setenv("QUIZ_DEBUG", "")

	cfg := Load()

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("QUIZ_ADDR", ":9000")
	t.Setenv("QUIZ_ALLOWED_ORIGINS", "https://quiz.example.com, http://localhost:5173")
	t.Setenv("QUIZ_DEBUG", "true")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"https://quiz.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Debug)
}
