package config

import (
	"os"
	"strconv"

	"autocsv/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig
	Analysis AnalysisConfig
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Dir string
}

// AnalysisConfig holds significance thresholds for connection detection
type AnalysisConfig struct {
	CorrelationThreshold float64
	InfluenceThreshold   float64
	TopConnectionDetails int
}

// Defaults returns the zero-configuration setup
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: "output",
		},
		Analysis: AnalysisConfig{
			CorrelationThreshold: 0.3,
			InfluenceThreshold:   0.3,
			TopConnectionDetails: 5,
		},
	}
}

// Load reads configuration from the environment, starting from defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Optional .env; absence is not an error
	_ = godotenv.Load()

	cfg := Defaults()

	if dir := os.Getenv("AUTOCSV_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}

	var err error
	cfg.Analysis.CorrelationThreshold, err = loadFloat("AUTOCSV_CORRELATION_THRESHOLD", cfg.Analysis.CorrelationThreshold)
	if err != nil {
		return nil, err
	}
	cfg.Analysis.InfluenceThreshold, err = loadFloat("AUTOCSV_INFLUENCE_THRESHOLD", cfg.Analysis.InfluenceThreshold)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid value for "+key)
	}
	return v, nil
}

func (c *Config) validate() error {
	if c.Output.Dir == "" {
		return errors.New("CONFIG_INVALID", "output directory cannot be empty")
	}
	if c.Analysis.CorrelationThreshold < 0 || c.Analysis.CorrelationThreshold >= 1 {
		return errors.New("CONFIG_INVALID", "correlation threshold must be in [0,1)")
	}
	if c.Analysis.InfluenceThreshold < 0 || c.Analysis.InfluenceThreshold >= 1 {
		return errors.New("CONFIG_INVALID", "influence threshold must be in [0,1)")
	}
	return nil
}
