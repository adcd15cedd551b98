package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const Production = "production"

type HTTPOptions struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateBurst       int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

type RedisOptions struct {
	Addr           string        `env:"REDIS_ADDR"`
	MaxRetries     int           `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

type KafkaOptions struct {
	Broker     string `env:"KAFKA_BROKER"`
	LeaveTopic string `env:"KAFKA_LEAVE_TOPIC" envDefault:"hr.leave.lifecycle.v1"`
	MaxRetries int    `env:"KAFKA_MAX_RETRIES" envDefault:"5"`
}

// SeedEmployee is one entry of SEED_EMPLOYEES, e.g.
// [{"id":"E001","full_name":"Alice Smith","balances":{"ANNUAL":20}}]
type SeedEmployee struct {
	ID       string         `json:"id"`
	FullName string         `json:"full_name"`
	Balances map[string]int `json:"balances"`
}

type Configuration struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	SeedEmployees string `env:"SEED_EMPLOYEES"`

	HTTP  HTTPOptions
	Redis RedisOptions
	Kafka KafkaOptions
}

// Load reads .env files that exist, then the environment.
func Load(envFiles ...string) (*Configuration, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func (c *Configuration) IsProduction() bool {
	return c.Env == Production
}

// Seeds decodes SEED_EMPLOYEES. An empty value yields the default roster.
func (c *Configuration) Seeds() ([]SeedEmployee, error) {
	if c.SeedEmployees == "" {
		return DefaultSeeds(), nil
	}
	var seeds []SeedEmployee
	if err := json.Unmarshal([]byte(c.SeedEmployees), &seeds); err != nil {
		return nil, fmt.Errorf("parse SEED_EMPLOYEES: %w", err)
	}
	return seeds, nil
}

func DefaultSeeds() []SeedEmployee {
	return []SeedEmployee{
		{ID: "E001", FullName: "Alice Smith", Balances: map[string]int{"ANNUAL": 20, "SICK": 10, "MATERNITY": 0}},
		{ID: "E002", FullName: "Bob Johnson", Balances: map[string]int{"ANNUAL": 15, "SICK": 10, "MATERNITY": 0}},
		{ID: "M001", FullName: "Sarah Jenkins", Balances: map[string]int{"ANNUAL": 25, "SICK": 12, "MATERNITY": 90}},
	}
}
