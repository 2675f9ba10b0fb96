package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"media": map[string]any{
			"bucketUrl":     "",
			"maxUploadSize": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "MEDIA_MAXUPLOADSIZE", want: "media.maxUploadSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const minimalConfig = `
env:
  serviceName: storefront
  log:
    level: info
http:
  port: 9090
secretKey:
  access: from-file
  refresh: from-file
auth:
  accessTokenDuration: 10m
media:
  bucketUrl: mem://
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeConfig(t, minimalConfig)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "mem://", cfg.Media.BucketURL)
	assert.Equal(t, defaultMaxUploadSize, cfg.Media.MaxUploadSize)
	assert.NotNil(t, cfg.Database)
	assert.Equal(t, 10*time.Minute, cfg.Auth.AccessTokenDuration)
}

func TestNew_EnvironmentOverridesFile(t *testing.T) {
	writeConfig(t, minimalConfig)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("MEDIA_BUCKETURL", "file:///srv/media")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, "from-file", cfg.SecretKey.Refresh)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, "file:///srv/media", cfg.Media.BucketURL)
}

func TestNew_DotEnvFile(t *testing.T) {
	writeConfig(t, minimalConfig)
	require.NoError(t, os.WriteFile(dotenvFile, []byte("SECRETKEY_REFRESH=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SECRETKEY_REFRESH") })

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.SecretKey.Refresh)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "ignored")
	t.Setenv("POSTGRES_REPLICAS_2_PORT", "5435")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
