package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AdminPassword is the single shared admin credential: either a
	// bcrypt hash (recommended) or a plaintext password.
	AdminPassword string        `env:"ADMIN_PASSWORD"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=720h"`

	Turnstile TurnstileConfig
	Quota     QuotaConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type TurnstileConfig struct {
	SecretKey string `env:"TURNSTILE_SECRET_KEY"`
	VerifyURL string `env:"TURNSTILE_VERIFY_URL, default=https://challenges.cloudflare.com/turnstile/v0/siteverify"`

	// WidgetSiteKey is the Turnstile site key handed to sites created
	// through the public apply-code flow.
	WidgetSiteKey string `env:"TURNSTILE_WIDGET_SITE_KEY"`
}

type QuotaConfig struct {
	// SelfServeMaxSize is the cumulative comment-content ceiling, in
	// bytes, for self-provisioned sites.
	SelfServeMaxSize int64 `env:"SELF_SERVE_MAX_SIZE, default=1048576"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commentbox"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
