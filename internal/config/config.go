package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type HubConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"dev"`
	HTTPServer `yaml:"http_server"`
	HubDB      `yaml:"hub_db"`
	LogConfig  `yaml:"log_config"`
	Secrets    `yaml:"secrets"`
	Kafka      `yaml:"kafka"`
	Tracking   `yaml:"tracking"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type HubDB struct {
	Dsn string `yaml:"dsn" env:"HUB_DB_DSN"`
	// Path to golang-migrate SQL files; gorm AutoMigrate runs regardless.
	MigrationsPath string `yaml:"migrations_path" env:"HUB_DB_MIGRATIONS_PATH"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

type Secrets struct {
	// Base64-encoded 32-byte AES key protecting site API secrets at rest.
	SiteSecretsKey string `yaml:"site_secrets_key" env:"SITE_SECRETS_KEY"`
}

type Kafka struct {
	Host    string `yaml:"host" env:"KAFKA_HOST"`
	Port    string `yaml:"port" env:"KAFKA_PORT"`
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED"`
}

type Tracking struct {
	AfterShipAPIKey string `yaml:"aftership_api_key" env:"AFTERSHIP_API_KEY"`
	// Carrier API quota used to derive the inter-call delay on bulk refresh.
	RequestsPerMinute int `yaml:"requests_per_minute" env:"TRACKING_RPM" env-default:"100"`
}

func MustLoad() *HubConfig {
	configPath := os.Getenv("ORDERHUB_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDERHUB_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg HubConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
