package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"password_hash_key": "pepper",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"email_token_duration": "3h",
			"hash_key": "digest",
			"version": "0.9.0"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"rate_limit": 1.5,
			"rate_burst": 3,
			"trust_proxy_headers": true
		},
		"storage": {
			"db": { "dsn": "mongodb://localhost:27017/askbox" },
			"cache": { "redis_url": "redis://localhost:6379/0", "ttl": "2m" }
		},
		"adapter": { "http_address": "http://mail.local", "request_timeout": "5s" },
		"bootstrap": { "admin_username": "root", "admin_password": "secret", "admin_email": "root@example.com" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pepper", cfg.App.PasswordHashKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 3*time.Hour, cfg.App.EmailTokenDuration)
	assert.Equal(t, "digest", cfg.App.HashKey)
	assert.Equal(t, "0.9.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 1.5, cfg.Server.RateLimit, 1e-9)
	assert.Equal(t, 3, cfg.Server.RateBurst)
	assert.True(t, cfg.Server.TrustProxyHeaders)

	assert.Equal(t, "mongodb://localhost:27017/askbox", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.Cache.RedisURL)
	assert.Equal(t, 2*time.Minute, cfg.Storage.Cache.TTL)

	assert.Equal(t, "http://mail.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "root", cfg.Bootstrap.AdminUsername)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: 1000},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
