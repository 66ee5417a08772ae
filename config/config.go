package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultGeofenceRadiusMeters = 500.0
	defaultFanOutConcurrency    = 4
	defaultHistoryLimit         = 50
	defaultHistoryMaxLimit      = 500
	defaultQueryTimeout         = 5 * time.Second
	defaultSlowQueryThreshold   = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds per-call limits applied by the repositories
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Identity configures verification of identity-provider bearer tokens
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Geofence configuration for safe-zone evaluation and alert fan-out
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Location configuration for history queries
	Location *LocationConfig `json:"location" yaml:"location"`

	// QRCode configuration for connection invite QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines limits applied to every store call
type DatabaseConfig struct {
	QueryTimeout       time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// AutoMigrate creates or updates the schema from the persistence models on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// IdentityConfig defines how bearer tokens from the identity provider are verified
type IdentityConfig struct {
	// Provider is "jwt" for HMAC-signed tokens or "google" for Google ID tokens
	Provider string `json:"provider" yaml:"provider"`

	// JWTSecret is the shared HMAC secret of the identity provider (jwt provider)
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Issuer, when set, must match the iss claim
	Issuer string `json:"issuer" yaml:"issuer"`

	// Audience, when set, must be present in the aud claim. For the google
	// provider it is the OAuth client ID.
	Audience string `json:"audience" yaml:"audience"`
}

// GeofenceConfig defines the safe-zone radius and alert fan-out limits
type GeofenceConfig struct {
	RadiusMeters      float64 `json:"radiusMeters" yaml:"radiusMeters"`
	FanOutConcurrency int     `json:"fanOutConcurrency" yaml:"fanOutConcurrency"`
}

// LocationConfig defines location history limits
type LocationConfig struct {
	HistoryDefaultLimit int `json:"historyDefaultLimit" yaml:"historyDefaultLimit"`
	HistoryMaxLimit     int `json:"historyMaxLimit" yaml:"historyMaxLimit"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, anything else disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Optional service account key file (for google provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills in optional sections left out of the YAML file.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.QueryTimeout <= 0 {
		cfg.Database.QueryTimeout = defaultQueryTimeout
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.RadiusMeters <= 0 {
		cfg.Geofence.RadiusMeters = defaultGeofenceRadiusMeters
	}
	if cfg.Geofence.FanOutConcurrency <= 0 {
		cfg.Geofence.FanOutConcurrency = defaultFanOutConcurrency
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	if cfg.Location.HistoryDefaultLimit <= 0 {
		cfg.Location.HistoryDefaultLimit = defaultHistoryLimit
	}
	if cfg.Location.HistoryMaxLimit <= 0 {
		cfg.Location.HistoryMaxLimit = defaultHistoryMaxLimit
	}
	if cfg.Location.HistoryDefaultLimit > cfg.Location.HistoryMaxLimit {
		cfg.Location.HistoryDefaultLimit = cfg.Location.HistoryMaxLimit
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

// canonicalizeEnvKey maps an environment variable name onto the YAML key path.
// Consecutive segments are merged when together they name an existing key, so
// GEOFENCE_RADIUS_METERS resolves to geofence.radiusMeters.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, consumed := findExistingSegment(current, segments[i:])
		if consumed == 0 {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += consumed
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment returns the existing key matched by the longest run of
// leading segments, its child map and the number of segments consumed.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, consumed int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, n
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
