package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hopebridge")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoad(t *testing.T) {
	t.Cleanup(func() { loadDotenv = func(...string) error { return nil } })
	loadDotenv = func(...string) error { return nil }

	t.Run("missing required", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("SESSION_SECRET", "")
		t.Setenv("REDIS_ADDR", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, ":8080", cfg.Addr())
		require.Equal(t, 587, cfg.SMTPPort)
		require.True(t, cfg.IsDevelopment())
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9000")
		t.Setenv("APP_ENV", "production")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ":9000", cfg.Addr())
		require.False(t, cfg.IsDevelopment())
	})
}
