package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	SecretFile string `env:"SECRET_FILE, default=key.txt"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Services ServicesConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ServicesConfig holds the base URLs of the downstream services plus the
// per-call timeout shared by every inter-service client.
type ServicesConfig struct {
	IdentityURL   string        `env:"IDENTITY_URL,   default=http://localhost:9000"`
	CatalogURL    string        `env:"CATALOG_URL,    default=http://localhost:9001"`
	AuditURL      string        `env:"AUDIT_URL,      default=http://localhost:9004"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
// defaultPort is applied when PORT is unset, so each service binary keeps its
// conventional port without per-binary env files.
func Load(defaultPort string) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return &cfg
}
