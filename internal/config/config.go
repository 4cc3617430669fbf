package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type ServerCfg struct {
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"inquiry-service"`
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://localhost:14268/api/traces"`
}

type DatabaseCfg struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"inquirydb"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DownstreamCfg carries the downstream base URLs. Both must already include
// the trailing separator, the reference id is appended as-is.
type DownstreamCfg struct {
	CustomerServiceURL string `env:"CUSTOMER_SERVICE_URL" envDefault:"http://localhost:8081/api/v1/customers/"`
	ProductServiceURL  string `env:"PRODUCT_SERVICE_URL" envDefault:"http://localhost:8082/api/v1/products/"`
}

// KafkaCfg configures event publishing. No brokers disables it.
type KafkaCfg struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
}

type Config struct {
	Server     ServerCfg
	Database   DatabaseCfg
	Downstream DownstreamCfg
	Kafka      KafkaCfg
}

// Build parses the configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

func (cfg ServerCfg) IsDevelopment() bool {
	return cfg.Environment == "development"
}
