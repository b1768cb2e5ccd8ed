package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// BootstrapAdminEmail is granted the admin role on its first
	// registration; every other first-time email starts as a plain user.
	BootstrapAdminEmail string `env:"BOOTSTRAP_ADMIN_EMAIL, default=admin@styledecor.app"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Payment PaymentConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=styledecor"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type PaymentConfig struct {
	SecretKey string `env:"PAYMENT_SECRET_KEY"`
	BaseURL   string `env:"PAYMENT_BASE_URL, default=https://api.stripe.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
