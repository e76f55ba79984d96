package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvFileKey, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.PlaceCacheTTL())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.Empty(t, cfg.PersonaCatalog)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astrasafe.yaml")
	yamlContent := `
addr: ":9090"
log_level: debug
persona_catalog: /etc/astrasafe/catalog.yaml
cors_origins: "https://astrasafe.app, https://staging.astrasafe.app"
place_cache_ttl_seconds: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	t.Setenv(EnvFileKey, path)
	t.Setenv("ASTRASAFE_ADDR", ":7070")
	t.Setenv("ASTRASAFE_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/astrasafe/catalog.yaml", cfg.PersonaCatalog)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.PlaceCacheTTL())
	assert.Equal(t, []string{"https://astrasafe.app", "https://staging.astrasafe.app"}, cfg.AllowedOrigins())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvFileKey, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty addr":   func(c *Config) { c.Addr = " " },
		"bad level":    func(c *Config) { c.LogLevel = "loud" },
		"bad gin mode": func(c *Config) { c.GinMode = "prod" },
		"negative ttl": func(c *Config) { c.PlaceCacheTTLSeconds = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := New()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
	assert.NoError(t, New().Validate())
}
