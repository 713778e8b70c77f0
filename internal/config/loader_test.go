package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestor.yaml")
	yamlContent := `server:
  http_port: 9090
auth:
  jwt_secret: from-file-secret
reminders:
  timezone: America/Lima
  concurrency: 3
log:
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	t.Setenv("SERVER_HTTP_PORT", "9191")
	t.Setenv("DYNAMODB_RECORDS_TABLE", "records-test")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "on")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "records-test", cfg.DynamoDB.RecordsTable)
	assert.Equal(t, "users", cfg.DynamoDB.UsersTable)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "from-file-secret", cfg.Auth.JWTSecret.Value())
	assert.Equal(t, 3, cfg.Reminders.Concurrency)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.GatewayMockEnabled())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dynamodb", cfg.Store.Driver)
	assert.Equal(t, "0 9 * * *", cfg.Reminders.Schedule)
	assert.Equal(t, "America/Lima", cfg.Reminders.Timezone)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.Gemini.Model)
}

func TestLoad_LegacyDNIToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("API_TOKEN_DNI", "legacy-token")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", cfg.DNI.APIToken.Value())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Store.Driver = "postgres"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.driver")
	assert.Contains(t, err.Error(), "auth.jwt_secret is required")
}

func TestSecret_Redacted(t *testing.T) {
	s := Secret("token")
	assert.Equal(t, "[REDACTED]", s.String())
	b, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"[REDACTED]"`, string(b))
	assert.Equal(t, "", Secret("").String())
}
