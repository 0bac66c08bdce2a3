package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Notifications.IntervalSeconds)
	assert.Equal(t, 10, cfg.Notifications.InitialDelaySeconds)
	assert.Equal(t, 30, cfg.Garage.TokenValidityDays)
	assert.False(t, cfg.Garage.AllowResubmit)
	assert.Equal(t, DefaultGarageRules, cfg.Garage.Rules)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.toml")
	content := `
[server]
http_port = 8080

[database]
host = "db"
port = 5433
user = "fleet"
password = "secret"
dbname = "fleet"
sslmode = "disable"

[notifications]
recipients = ["ops@example.com"]
interval_seconds = 120

[garage]
allow_resubmit = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("ALERT_EMAILS", "a@example.com, b@example.com,,")
	t.Setenv("FRONTEND_URL", "https://fleet.example.com")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Notifications.Recipients)
	assert.Equal(t, 120, cfg.Notifications.IntervalSeconds)
	assert.Equal(t, "https://fleet.example.com", cfg.App.PublicBaseURL)
	assert.True(t, cfg.Garage.AllowResubmit)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, "host=db port=5433 user=fleet password=secret dbname=fleet sslmode=disable", cfg.Database.DSN())
}

func TestLoad_RepositoryConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	assert.False(t, cfg.Garage.AllowResubmit, "links are single use unless enabled explicitly")
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestDatabaseConfig_URLWins(t *testing.T) {
	c := DatabaseConfig{URL: "postgres://u:p@h/db", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@h/db", c.DSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"zero interval", func(c *Config) { c.Notifications.IntervalSeconds = 0 }},
		{"negative delay", func(c *Config) { c.Notifications.InitialDelaySeconds = -1 }},
		{"zero token validity", func(c *Config) { c.Garage.TokenValidityDays = 0 }},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }},
		{"bad trusted proxy", func(c *Config) { c.RateLimit.TrustedProxies = []string{"10.0.0.0/33"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, defaults().Validate())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
