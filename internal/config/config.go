package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Reputation ReputationConfig `yaml:"reputation"`
	Redis      RedisConfig      `yaml:"redis"`
	Metrics    MetricsConfig    `yaml:"metrics"`
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
	TxMaxRetries    uint64        `yaml:"tx_max_retries"     env:"DATABASE_TX_MAX_RETRIES"     env-default:"3"`
	TxRetryBase     time.Duration `yaml:"tx_retry_base"      env:"DATABASE_TX_RETRY_BASE"      env-default:"20ms"`

	// ApplicationName is reported in pg_stat_activity.
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"tarikh"`
	// StatementTimeout caps each statement server-side. Zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"0s"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"tarikh"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReputationConfig holds point values awarded by the moderation workflow.
type ReputationConfig struct {
	EventPoints  int64 `yaml:"event_points"  env:"REPUTATION_EVENT_POINTS"  env-default:"10"`
	SayingPoints int64 `yaml:"saying_points" env:"REPUTATION_SAYING_POINTS" env-default:"5"`

	// BookmarkMilestone is the bookmark count that grants BookmarkPoints once.
	// Zero disables the milestone.
	BookmarkMilestone int   `yaml:"bookmark_milestone" env:"REPUTATION_BOOKMARK_MILESTONE" env-default:"25"`
	BookmarkPoints    int64 `yaml:"bookmark_points"    env:"REPUTATION_BOOKMARK_POINTS"    env-default:"2"`
}

// RedisConfig holds settings for the leaderboard cache.
type RedisConfig struct {
	Enabled        bool   `yaml:"enabled"         env:"REDIS_ENABLED"         env-default:"false"`
	Addr           string `yaml:"addr"            env:"REDIS_ADDR"            env-default:"localhost:6379"`
	Password       string `yaml:"password"        env:"REDIS_PASSWORD"`
	DB             int    `yaml:"db"              env:"REDIS_DB"              env-default:"0"`
	LeaderboardKey string `yaml:"leaderboard_key" env:"REDIS_LEADERBOARD_KEY" env-default:"tarikh:leaderboard"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
