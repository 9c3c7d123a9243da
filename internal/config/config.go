package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Timer     TimerConfig     `yaml:"timer"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"10"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"2"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	MigrateOnStart    bool          `yaml:"migrate_on_start"    env:"DATABASE_MIGRATE_ON_START"    env-default:"false"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued by
// the identity provider; TokenTTL only applies to locally minted dev tokens.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"focuslog"`
	Leeway    time.Duration `yaml:"leeway"     env:"AUTH_LEEWAY"     env-default:"30s"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
	TrustProxy        bool          `yaml:"trust_proxy"         env:"RATE_LIMIT_TRUST_PROXY"         env-default:"false"`
}

// TimerConfig holds session accounting limits.
type TimerConfig struct {
	MaxSessionHours  int           `yaml:"max_session_hours"  env:"TIMER_MAX_SESSION_HOURS"  env-default:"24"`
	FutureSkew       time.Duration `yaml:"future_skew"        env:"TIMER_FUTURE_SKEW"        env-default:"1m"`
	ListDefaultLimit int           `yaml:"list_default_limit" env:"TIMER_LIST_DEFAULT_LIMIT" env-default:"50"`
	ListMaxLimit     int           `yaml:"list_max_limit"     env:"TIMER_LIST_MAX_LIMIT"     env-default:"200"`
}

// MaxSessionDuration returns MaxSessionHours as a duration.
func (t TimerConfig) MaxSessionDuration() time.Duration {
	return time.Duration(t.MaxSessionHours) * time.Hour
}
