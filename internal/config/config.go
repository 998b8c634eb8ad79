package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	LinkedIn    LinkedInConfig    `yaml:"linkedin"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Cache       CacheConfig       `yaml:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
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
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued by
// the identity service that shares this secret.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"postcal"`
}

// LinkedInConfig holds the OAuth client and API endpoints for publishing.
type LinkedInConfig struct {
	ClientID     string        `yaml:"client_id"     env:"LINKEDIN_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"LINKEDIN_CLIENT_SECRET"`
	RedirectURI  string        `yaml:"redirect_uri"  env:"LINKEDIN_REDIRECT_URI"`
	AuthBaseURL  string        `yaml:"auth_base_url" env:"LINKEDIN_AUTH_BASE_URL" env-default:"https://www.linkedin.com"`
	APIBaseURL   string        `yaml:"api_base_url"  env:"LINKEDIN_API_BASE_URL"  env-default:"https://api.linkedin.com"`
	Timeout      time.Duration `yaml:"timeout"       env:"LINKEDIN_TIMEOUT"       env-default:"10s"`
}

// CredentialsConfig holds the secret used to encrypt stored OAuth tokens.
type CredentialsConfig struct {
	EncryptionSecret string `yaml:"encryption_secret" env:"CREDENTIALS_ENCRYPTION_SECRET" env-required:"true"`
}

// CacheConfig holds the Redis settings for the day record fallback cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"false"`
	Addr     string        `yaml:"addr"     env:"CACHE_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db"       env:"CACHE_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"720h"`
}

// RateLimitConfig holds per-IP request budgets.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"       env-default:"120"`
	SharesPerMinute   int `yaml:"shares_per_minute"   env:"RATE_LIMIT_SHARE_RPM" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether the LinkedIn integration has all OAuth client settings.
func (c LinkedInConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}
