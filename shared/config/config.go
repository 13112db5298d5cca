package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public settings are read from public.yaml and may be committed to the repo.
type Public struct {
	HttpPort       string        `yaml:"http_port" validate:"required"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	MaxPostLength  int           `yaml:"max_post_length" validate:"required,gt=0"`
	LogLevel       string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON        bool          `yaml:"log_json"`
}

// Private settings come from the environment (optionally a .env file in the config folder).
type Private struct {
	Pg     Pg
	JwtKey string `env:"JWT_SECRET" validate:"required,min=16"`
}

type Pg struct {
	Host     string `env:"PG_HOST" envDefault:"localhost" validate:"required"`
	Port     int    `env:"PG_PORT" envDefault:"5432" validate:"required"`
	User     string `env:"PG_USER" validate:"required"`
	Password string `env:"PG_PASSWORD" validate:"required"`
	Dbname   string `env:"PG_DBNAME" envDefault:"yatube" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func Load(configFolder string) (*Config, error) {
	if err := godotenv.Load(path.Join(configFolder, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load .env: %w", err)
	}

	var public Public
	configFile, err := os.ReadFile(path.Join(configFolder, "public.yaml"))
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}
	if err := yaml.Unmarshal(configFile, &public); err != nil {
		return nil, fmt.Errorf("can't unmarshal config file: %w", err)
	}

	var private Private
	if err := env.Parse(&private); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}

	cfg := &Config{Public: public, Private: private}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
