// Copyright 2025 Irohad Authors
//
// YAML configuration with environment-variable substitution
// (${VAR} / ${VAR:-default}), matching the node's external interface.

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every externally-tunable setting for a node process.
type Config struct {
	Torii      ToriiSettings      `yaml:"torii"`
	Iroha      IrohaSettings      `yaml:"iroha"`
	Kura       KuraSettings       `yaml:"kura"`
	Monitoring MonitoringSettings `yaml:"monitoring"`
}

// ToriiSettings names the external gateway this core is embedded
// behind. The core never dials these itself — it only needs to know
// its own identity within that topology.
type ToriiSettings struct {
	URL        string `yaml:"url"`
	ConnectURL string `yaml:"connect_url"`
}

// IrohaSettings contains peer and transaction-lifetime settings shared
// across the node.
type IrohaSettings struct {
	PublicKey               string `yaml:"public_key"`
	TransactionTimeToLiveMs uint64 `yaml:"transaction_time_to_live_ms"`
	BlockBuildStepMs        uint64 `yaml:"block_build_step_ms"`
}

// KuraSettings configures block persistence.
type KuraSettings struct {
	BlockStorePath string `yaml:"block_store_path"`
	Mode           string `yaml:"mode"`
}

// MonitoringSettings configures the ambient logging and metrics stack.
type MonitoringSettings struct {
	Logging LoggingSettings `yaml:"logging"`
	Metrics MetricsSettings `yaml:"metrics"`
}

// LoggingSettings controls the structured logger.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsSettings controls whether Prometheus collectors are
// registered at all.
type MetricsSettings struct {
	Enabled bool `yaml:"enabled"`
}

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}, naming its
// two capture groups so substituteEnvVars can pull them out by name
// instead of by position.
var envVarPattern = regexp.MustCompile(`\$\{(?P<name>[^}:]+)(:-(?P<default>[^}]*))?\}`)

// substituteEnvVars walks every ${...} reference in content in a single
// pass over FindAllStringSubmatchIndex, splicing in the process environment's
// value (or the reference's own default) as it goes. Unlike a
// ReplaceAllStringFunc callback, which re-runs the pattern against each
// match in isolation, this builds the result directly from the index
// pairs the first scan already found.
func substituteEnvVars(content string) string {
	names := envVarPattern.SubexpNames()
	matches := envVarPattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return content
	}

	var out strings.Builder
	cursor := 0
	for _, m := range matches {
		out.WriteString(content[cursor:m[0]])
		cursor = m[1]

		var varName, defaultValue string
		for i, name := range names {
			start, end := m[2*i], m[2*i+1]
			if start < 0 || end < 0 {
				continue
			}
			switch name {
			case "name":
				varName = content[start:end]
			case "default":
				defaultValue = content[start:end]
			}
		}

		if value, ok := os.LookupEnv(varName); ok && value != "" {
			out.WriteString(value)
		} else {
			out.WriteString(defaultValue)
		}
	}
	out.WriteString(content[cursor:])
	return out.String()
}

// Load reads a YAML config file at path, substituting ${VAR} references
// against the process environment, and applies defaults to anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	expanded := substituteEnvVars(string(data))

	// Metrics default to enabled; a boolean left out of the YAML keeps
	// this preset value.
	cfg := Config{Monitoring: MonitoringSettings{Metrics: MetricsSettings{Enabled: true}}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv builds a Config entirely from environment variables,
// useful for container deployments that don't ship a YAML file.
func LoadFromEnv() *Config {
	cfg := &Config{
		Torii: ToriiSettings{
			URL:        getEnv("TORII_URL", ""),
			ConnectURL: getEnv("TORII_CONNECT_URL", ""),
		},
		Iroha: IrohaSettings{
			PublicKey:               getEnv("IROHA_PUBLIC_KEY", ""),
			TransactionTimeToLiveMs: getEnvUint64("TRANSACTION_TIME_TO_LIVE_MS", 0),
			BlockBuildStepMs:        getEnvUint64("BLOCK_BUILD_STEP_MS", 0),
		},
		Kura: KuraSettings{
			BlockStorePath: getEnv("KURA_BLOCK_STORE_PATH", ""),
			Mode:           getEnv("KURA_MODE", ""),
		},
		Monitoring: MonitoringSettings{
			Logging: LoggingSettings{
				Level:  getEnv("LOG_LEVEL", ""),
				Format: getEnv("LOG_FORMAT", ""),
			},
			Metrics: MetricsSettings{
				Enabled: getEnvBool("METRICS_ENABLED", true),
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Torii.URL == "" {
		c.Torii.URL = "127.0.0.1:1337"
	}
	if c.Torii.ConnectURL == "" {
		c.Torii.ConnectURL = "127.0.0.1:8888"
	}
	if c.Kura.Mode == "" {
		c.Kura.Mode = "strict"
	}
	if c.Monitoring.Logging.Level == "" {
		c.Monitoring.Logging.Level = "info"
	}
	if c.Monitoring.Logging.Format == "" {
		c.Monitoring.Logging.Format = "json"
	}
	if c.Iroha.TransactionTimeToLiveMs == 0 {
		c.Iroha.TransactionTimeToLiveMs = 100000
	}
	if c.Iroha.BlockBuildStepMs == 0 {
		c.Iroha.BlockBuildStepMs = 5000
	}
}

// Validate checks the fields required for a node to start.
func (c *Config) Validate() error {
	if c.Kura.BlockStorePath == "" {
		return fmt.Errorf("config: kura.block_store_path is required")
	}
	if c.Kura.Mode != "strict" && c.Kura.Mode != "fast" {
		return fmt.Errorf("config: kura.mode must be %q or %q, got %q", "strict", "fast", c.Kura.Mode)
	}
	if c.Iroha.PublicKey == "" {
		return fmt.Errorf("config: iroha.public_key is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvUint64(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}
