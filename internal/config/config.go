package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var Module = fx.Provide(NewConfig)

type (
	Config struct {
		Env        string        `mapstructure:"ENV"`
		LogLevel   string        `mapstructure:"LOG_LEVEL"`
		Host       string        `mapstructure:"HOST"`
		Port       string        `mapstructure:"PORT"`
		GRPCPort   string        `mapstructure:"GRPC_PORT"`
		DBDriver   string        `mapstructure:"DB_DRIVER"`
		DBHost     string        `mapstructure:"DB_HOST"`
		DBPort     string        `mapstructure:"DB_PORT"`
		DBUser     string        `mapstructure:"DB_USER"`
		DBPassword string        `mapstructure:"DB_PASSWORD"`
		DBName     string        `mapstructure:"DB_NAME"`
		DBSSLMode  string        `mapstructure:"DB_SSL_MODE"`
		JWTSecret  string        `mapstructure:"JWT_SECRET"`
		JWTTTL     time.Duration `mapstructure:"JWT_TTL"`
		BcryptCost int           `mapstructure:"BCRYPT_COST"`
		// Requests per AUTH_RATE_INTERVAL and client IP on the login and
		// register routes. Zero disables the limit.
		AuthRateLimit    int           `mapstructure:"AUTH_RATE_LIMIT"`
		AuthRateInterval time.Duration `mapstructure:"AUTH_RATE_INTERVAL"`
		// Comma separated.
		CORSOrigins string `mapstructure:"CORS_ORIGINS"`

		// Set when JWT_SECRET was empty and a secret had to be generated.
		GeneratedJWTSecret bool `mapstructure:"-"`
	}
)

var envs = []string{
	"ENV", "LOG_LEVEL", "HOST", "PORT", "GRPC_PORT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"JWT_SECRET", "JWT_TTL", "BCRYPT_COST", "CORS_ORIGINS",
	"AUTH_RATE_LIMIT", "AUTH_RATE_INTERVAL",
}

func NewConfig() (*Config, error) {
	// A missing .env file is fine, real env vars win over it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SOUVIENS")

	v.SetDefault("ENV", "prod")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("GRPC_PORT", "9000")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "0.0.0.0")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "souviens")
	v.SetDefault("DB_SSL_MODE", sslModeDisable)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("CORS_ORIGINS", "http://127.0.0.1:5173,http://127.0.0.1:3000")
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("AUTH_RATE_INTERVAL", time.Minute)

	for _, key := range envs {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, errors.Wrap(err, "generate jwt secret")
		}
		cfg.JWTSecret = secret
		cfg.GeneratedJWTSecret = true
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func validate(cfg *Config) error {
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return errors.New(fmt.Sprintf("DB driver is invalid: %s", cfg.DBDriver))
	}
	if cfg.JWTTTL <= 0 {
		return errors.New(fmt.Sprintf("JWT TTL must be positive: %s", cfg.JWTTTL))
	}
	if cfg.AuthRateLimit < 0 {
		return errors.New(fmt.Sprintf("auth rate limit must not be negative: %d", cfg.AuthRateLimit))
	}
	if cfg.AuthRateLimit > 0 && cfg.AuthRateInterval <= 0 {
		return errors.New(fmt.Sprintf("auth rate interval must be positive: %s", cfg.AuthRateInterval))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return errors.New(fmt.Sprintf("bcrypt cost out of range: %d", cfg.BcryptCost))
	}
	validSSLValues := []string{sslModeDisable, sslModeRequire}
	for _, validValue := range validSSLValues {
		if cfg.DBSSLMode == validValue {
			return nil
		}
	}
	return errors.New(fmt.Sprintf("DB SSL mode is invalid: %s", cfg.DBSSLMode))
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
