package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Argon2    Argon2Config
	RateLimit RateLimitConfig
	// DevMode relaxes transport hardening: cookies lose the Secure
	// flag and security headers run in development mode.
	DevMode bool
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	// URL empty means memory stores (dev/test only).
	URL string
}

type RedisConfig struct {
	// URL empty keeps sessions in the primary store.
	URL string
}

type SessionConfig struct {
	TTL time.Duration
}

type Argon2Config struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

type RateLimitConfig struct {
	// Rate per IP ("300-M" = 300/min). Empty disables.
	PerIP string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Session: SessionConfig{
			TTL: time.Duration(viper.GetInt64("SESSION_TTL_SECONDS")) * time.Second,
		},
		Argon2: Argon2Config{
			Memory:      uint32(viper.GetInt("ARGON2_MEMORY")),
			Iterations:  uint32(viper.GetInt("ARGON2_ITERATIONS")),
			Parallelism: uint8(viper.GetInt("ARGON2_PARALLELISM")),
		},
		RateLimit: RateLimitConfig{
			PerIP: getEnvOrDefault("RATE_LIMIT_PER_IP", "300-M"),
		},
		DevMode: viper.GetBool("DEV_MODE"),
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 7 * 24 * time.Hour
	}
	if cfg.Argon2.Memory == 0 {
		cfg.Argon2.Memory = 64 * 1024
	}
	if cfg.Argon2.Iterations == 0 {
		cfg.Argon2.Iterations = 3
	}
	if cfg.Argon2.Parallelism == 0 {
		cfg.Argon2.Parallelism = 2
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
