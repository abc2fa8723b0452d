package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Stream   StreamConfig   `yaml:"stream"`
}

type AppConfig struct {
	Name        string `yaml:"name" env:"APP_NAME" env-default:"joke-mcp"`
	Environment string `yaml:"environment" env:"APP_ENVIRONMENT" env-default:"production"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

type ServerConfig struct {
	Port int `yaml:"port" env:"PORT" env-default:"3000"`
}

type UpstreamConfig struct {
	ChuckAPIURL   string        `yaml:"chuck_api_url" env:"CHUCK_API_URL" env-default:"https://api.chucknorris.io"`
	DadJokeAPIURL string        `yaml:"dad_joke_api_url" env:"DAD_JOKE_API_URL" env-default:"https://icanhazdadjoke.com"`
	Timeout       time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT" env-default:"30s"`
}

type StreamConfig struct {
	Interval time.Duration `yaml:"interval" env:"SSE_INTERVAL" env-default:"10s"`
}

// Load reads configuration from the YAML file named by CONFIG_PATH when set,
// with environment variables applied on top; without CONFIG_PATH only the
// environment and tag defaults are used.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", configPath, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, nil
}
