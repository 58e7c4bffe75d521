// Package config loads the service configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageInMemory = "inmemory"
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

// Config sources in priority order: an explicit path, CONFIG_PATH, then the
// environment alone. Environment variables override values read from a file.
type Config struct {
	Env         string         `yaml:"env"          env:"ENV"          env-default:"local"`
	StorageType string         `yaml:"storage_type" env:"STORAGE_TYPE" env-default:"inmemory"`
	SeedFile    string         `yaml:"seed_file"    env:"SEED_FILE"`
	HTTP        HTTPConfig     `yaml:"http"`
	Mongo       MongoConfig    `yaml:"mongo"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host"             env:"HTTP_HOST"        env-default:"0.0.0.0"`
	Port            string        `yaml:"port"             env:"HTTP_PORT"        env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

type MongoConfig struct {
	URL      string `yaml:"url"      env:"MONGO_URL"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"socialapi"`
}

type PostgresConfig struct {
	User     string `yaml:"user"     env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DB       string `yaml:"db"       env:"POSTGRES_DB"`
	Host     string `yaml:"host"     env:"POSTGRES_HOST"    env-default:"localhost"`
	Port     int    `yaml:"port"     env:"POSTGRES_PORT"    env-default:"5432"`
	SSLMode  string `yaml:"sslmode"  env:"POSTGRES_SSLMODE" env-default:"disable"`
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port == "" {
		return errors.New("http.port is required")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("http.shutdown_timeout must be positive")
	}

	switch c.StorageType {
	case StorageInMemory:
	case StorageMongo:
		if c.Mongo.URL == "" {
			return errors.New("mongo.url is required for mongo storage")
		}
		if c.Mongo.Database == "" {
			return errors.New("mongo.database is required for mongo storage")
		}
	case StoragePostgres:
		if c.Postgres.User == "" || c.Postgres.DB == "" || c.Postgres.Host == "" {
			return errors.New("postgres user, db and host are required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	return nil
}
