package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvDecisionURL = "KICLASH_DECISION_URL"
	EnvDecisionKey = "KICLASH_DECISION_KEY"
	EnvRedisAddr   = "KICLASH_REDIS_ADDR"
)

// Load overlays a JSON file onto the defaults and validates the result.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnv reads .env files (a missing file is not an error) and applies the
// decision service and redis overrides to cfg.
func LoadEnv(cfg *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	if v, ok := os.LookupEnv(EnvDecisionURL); ok {
		cfg.Remote.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvDecisionKey); ok {
		cfg.Remote.APIKey = v
	}
	if v, ok := os.LookupEnv(EnvRedisAddr); ok && v != "" {
		cfg.Records.RedisAddr = v
		if cfg.Records.Backend == "gdata" {
			cfg.Records.Backend = "redis"
		}
	}
	if cfg.Remote.Enabled() {
		log.Printf("[config] remote decisions enabled: %s", cfg.Remote.Endpoint)
	}
	return nil
}
