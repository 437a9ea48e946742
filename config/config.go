package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
	MongoURI      string `env:"MONGODB_CONNSTRING"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"conference-central"`
	RedisAddr     string `env:"REDIS_ADDR"`
	JWTSecret     string `env:"SIGN,required"`
	LogMode       string `env:"LOG_MODE" envDefault:"dev"`
	TaskWorkers   int    `env:"TASK_WORKERS" envDefault:"4"`
	TaskQueueSize int    `env:"TASK_QUEUE_SIZE" envDefault:"64"`
}

// Load reads configuration from the environment, preferring an optional
// .env file for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
