package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
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
		"identity": map[string]any{
			"jwtSecret": "",
		},
		"geofence": map[string]any{
			"radiusMeters":      500,
			"fanOutConcurrency": 4,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "IDENTITY_JWTSECRET", want: "identity.jwtSecret"},
		{envKey: "IDENTITY_JWT_SECRET", want: "identity.jwtSecret"},
		{envKey: "GEOFENCE_RADIUS_METERS", want: "geofence.radiusMeters"},
		{envKey: "GEOFENCE_FAN_OUT_CONCURRENCY", want: "geofence.fanOutConcurrency"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 500.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, 4, cfg.Geofence.FanOutConcurrency)
	assert.Equal(t, 50, cfg.Location.HistoryDefaultLimit)
	assert.Equal(t, 500, cfg.Location.HistoryMaxLimit)
	assert.NotNil(t, cfg.Identity)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Geofence: &GeofenceConfig{RadiusMeters: 750, FanOutConcurrency: 2},
		Location: &LocationConfig{HistoryDefaultLimit: 1000, HistoryMaxLimit: 200},
	}
	cfg.applyDefaults()

	assert.Equal(t, 750.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, 2, cfg.Geofence.FanOutConcurrency)
	assert.Equal(t, 200, cfg.Location.HistoryMaxLimit)
	assert.Equal(t, 200, cfg.Location.HistoryDefaultLimit)
}

func TestLoadWithEnv_GeofenceRadiusOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "geofence-override", `
env:
  env: develop
geofence:
  radiusMeters: 500
  fanOutConcurrency: 4
`)
	t.Setenv("GEOFENCE_RADIUS_METERS", "750")

	cfg, err := LoadWithEnv[Config]("geofence-override", relativeTo(t, dir))
	if assert.NoError(t, err) {
		assert.Equal(t, 750.0, cfg.Geofence.RadiusMeters)
		assert.Equal(t, 4, cfg.Geofence.FanOutConcurrency)
		assert.Equal(t, "develop", cfg.Env.Env)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
