package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type HTTPConfig struct {
	Address             string `yaml:"address" env:"TRAVELDESK_HTTP_ADDRESS"`
	SwaggerDir          string `yaml:"swagger_dir" env:"TRAVELDESK_SWAGGER_DIR"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	RateLimitPerMinute  int    `yaml:"rate_limit_per_minute" env:"TRAVELDESK_RATE_LIMIT_PER_MINUTE"`
	RateLimitBurst      int    `yaml:"rate_limit_burst"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"TRAVELDESK_GRPC_ADDRESS"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"TRAVELDESK_DB_HOST"`
	Port     int    `yaml:"port" env:"TRAVELDESK_DB_PORT"`
	User     string `yaml:"user" env:"TRAVELDESK_DB_USER"`
	Password string `yaml:"password" env:"TRAVELDESK_DB_PASSWORD"`
	Name     string `yaml:"name" env:"TRAVELDESK_DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"TRAVELDESK_DB_SSL_MODE"`
	MaxConns int32  `yaml:"max_conns" env:"TRAVELDESK_DB_MAX_CONNS"`
}

func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, sslMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"TRAVELDESK_REDIS_ADDR"`
	Password string `yaml:"password" env:"TRAVELDESK_REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers" env:"TRAVELDESK_KAFKA_BROKERS" envSeparator:","`
	TravelerTopic string   `yaml:"traveler_topic"`
	GroupID       string   `yaml:"group_id"`
}

type CacheConfig struct {
	ReferenceTTLSeconds int `yaml:"reference_ttl_seconds"`
}

func (c CacheConfig) ReferenceTTL() time.Duration {
	return time.Duration(c.ReferenceTTLSeconds) * time.Second
}

type LoggingConfig struct {
	Level      string `yaml:"level" env:"TRAVELDESK_LOG_LEVEL"`
	Format     string `yaml:"format" env:"TRAVELDESK_LOG_FORMAT"`
	Output     string `yaml:"output"`
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" env:"TRAVELDESK_OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name"`
}

// LoadConfig reads the YAML file at path, then applies environment overrides.
// A .env file in the working directory is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data and applies defaults and environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used for any key the file leaves out.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:             ":5001",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
			RateLimitPerMinute:  600,
			RateLimitBurst:      50,
		},
		GRPC: GRPCConfig{Address: ":5002"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Kafka: KafkaConfig{
			TravelerTopic: "traveler_events",
			GroupID:       "traveldesk-worker",
		},
		Cache: CacheConfig{ReferenceTTLSeconds: 60},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stdout",
			FilePath:   "logs/traveldesk.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Telemetry: TelemetryConfig{ServiceName: "traveldesk"},
	}
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}
	if c.Database.MaxConns < 0 {
		return errors.New("database.max_conns must not be negative")
	}
	return nil
}
