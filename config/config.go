// Package config holds the settings shared by the hashes binaries.
//
// Example:
//
//	chunk_size: 131072
//	output: hex
//	input_format: raw
//	output_format: raw
//	grpc:
//	  listen: 127.0.0.1:7450
//	  target: 127.0.0.1:7450
//	  max_msg_bytes: 16777216
//	  timeout: 30s
//	metrics:
//	  listen: 127.0.0.1:7451
//	log:
//	  level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"xdao.co/hashes/hasher"
	"xdao.co/hashes/structured"
)

// EnvConfig names the config file when no path is given explicitly.
const EnvConfig = "HASHES_CONFIG"

type Config struct {
	ChunkSize    int           `yaml:"chunk_size"`
	Output       string        `yaml:"output"`
	InputFormat  string        `yaml:"input_format"`
	OutputFormat string        `yaml:"output_format"`
	GRPC         GRPCConfig    `yaml:"grpc"`
	Metrics      MetricsConfig `yaml:"metrics"`
	Log          LogConfig     `yaml:"log"`
}

type GRPCConfig struct {
	// Listen is the daemon's listen address.
	Listen string `yaml:"listen"`
	// Target is the daemon address clients dial.
	Target      string        `yaml:"target"`
	MaxMsgBytes int           `yaml:"max_msg_bytes"`
	Timeout     time.Duration `yaml:"timeout"`
}

type MetricsConfig struct {
	// Listen is the HTTP address for /metrics and /healthz. Empty disables it.
	Listen string `yaml:"listen"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ChunkSize:    hasher.DefaultChunkSize,
		Output:       hasher.ModeHex.String(),
		InputFormat:  string(structured.Raw),
		OutputFormat: string(structured.Raw),
		GRPC: GRPCConfig{
			Listen:      "127.0.0.1:7450",
			Target:      "127.0.0.1:7450",
			MaxMsgBytes: 16 << 20,
			Timeout:     30 * time.Second,
		},
		Metrics: MetricsConfig{Listen: "127.0.0.1:7451"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path, or the file named by $HASHES_CONFIG when path is empty,
// or returns Default when neither is set.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if c.ChunkSize <= 0 || c.ChunkSize > hasher.MaxChunkSize {
		return fmt.Errorf("chunk_size must be between 1 and %d, got %d", hasher.MaxChunkSize, c.ChunkSize)
	}
	if _, err := hasher.ParseMode(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := structured.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("input_format: %w", err)
	}
	if _, err := structured.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	if c.GRPC.MaxMsgBytes <= 0 {
		return fmt.Errorf("grpc.max_msg_bytes must be positive")
	}
	if c.GRPC.Timeout < 0 {
		return fmt.Errorf("grpc.timeout must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// Mode returns the parsed output mode. Validate must have succeeded.
func (c Config) Mode() hasher.Mode {
	m, _ := hasher.ParseMode(c.Output)
	return m
}
