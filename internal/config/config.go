package config

import (
	"time"
)

// Config is the root server configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	TextServices TextServicesConfig `yaml:"text_services"`
	Cache        CacheConfig        `yaml:"cache"`
	Artifact     ArtifactConfig     `yaml:"dictionary_artifact"`
}

// ClientConfig is the configuration of the authoring CLI. It talks to the
// server's REST API only, so it needs no database or secrets.
type ClientConfig struct {
	API      APIConfig      `yaml:"api"`
	Log      LogConfig      `yaml:"log"`
	Workflow WorkflowConfig `yaml:"workflow"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the settings used to validate admin access tokens issued
// by the external auth provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"sindhi-poetry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TextServicesConfig points at the external Sindhi text-transform services.
// An empty URL disables the corresponding /api/text endpoint.
type TextServicesConfig struct {
	HesudharURL  string        `yaml:"hesudhar_url"  env:"TEXT_HESUDHAR_URL"`
	RomanizerURL string        `yaml:"romanizer_url" env:"TEXT_ROMANIZER_URL"`
	TranslateURL string        `yaml:"translate_url" env:"TEXT_TRANSLATE_URL"`
	APIKey       string        `yaml:"api_key"       env:"TEXT_API_KEY"`
	Timeout      time.Duration `yaml:"timeout"       env:"TEXT_TIMEOUT"       env-default:"10s"`
}

// CacheConfig holds the public listing cache settings.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"   env:"CACHE_ENABLED"   env-default:"false"`
	RedisURL string        `yaml:"redis_url" env:"CACHE_REDIS_URL" env-default:"redis://localhost:6379/0"`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL"       env-default:"5m"`
	Prefix   string        `yaml:"prefix"    env:"CACHE_PREFIX"    env-default:"poetry:"`
}

// Artifact backends.
const (
	ArtifactBackendFile = "file"
	ArtifactBackendS3   = "s3"
)

// ArtifactConfig locates the romanization lookup artifact produced by the
// dictionary sync.
type ArtifactConfig struct {
	Backend         string `yaml:"backend"           env:"ARTIFACT_BACKEND"           env-default:"file"`
	Path            string `yaml:"path"              env:"ARTIFACT_PATH"              env-default:"./data/roman-dictionary.json"`
	Bucket          string `yaml:"bucket"            env:"ARTIFACT_S3_BUCKET"`
	Key             string `yaml:"key"               env:"ARTIFACT_S3_KEY"            env-default:"roman-dictionary.json"`
	Region          string `yaml:"region"            env:"ARTIFACT_S3_REGION"`
	Endpoint        string `yaml:"endpoint"          env:"ARTIFACT_S3_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     env:"ARTIFACT_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"ARTIFACT_S3_SECRET_ACCESS_KEY"`
	PathStyle       bool   `yaml:"path_style"        env:"ARTIFACT_S3_PATH_STYLE"     env-default:"false"`
}

// APIConfig tells the CLI where the REST API lives.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"POETRY_API_URL"     env-default:"http://localhost:8080"`
	Token   string        `yaml:"token"    env:"POETRY_API_TOKEN"`
	Timeout time.Duration `yaml:"timeout"  env:"POETRY_API_TIMEOUT" env-default:"10s"`
}

// WorkflowConfig tunes the couplet-authoring workflow.
type WorkflowConfig struct {
	RedirectDelay  time.Duration `yaml:"redirect_delay"  env:"WORKFLOW_REDIRECT_DELAY"  env-default:"1500ms"`
	RequireEnglish bool          `yaml:"require_english" env:"WORKFLOW_REQUIRE_ENGLISH" env-default:"false"`
}
