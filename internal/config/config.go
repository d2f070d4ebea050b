package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Payoff/internal/analysis"
	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
	RateLimit   int `yaml:"rate_limit_per_minute"`
}

// DatabaseConfig selects the dataset source. An empty URL serves the
// compiled-in dataset.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// HermesConfig enables analysis events. An empty URL disables them.
type HermesConfig struct {
	URL string `yaml:"url"`
}

type AnalysisConfig struct {
	Weights      AnalysisWeights `yaml:"weights"`
	TopN         int             `yaml:"top_n"`
	FrontierX    string          `yaml:"frontier_x"`
	FrontierY    string          `yaml:"frontier_y"`
	DefaultGroup string          `yaml:"default_group"`
}

// AnalysisWeights is the default factor weight vector, used whenever a
// request carries no weights of its own.
type AnalysisWeights struct {
	Freedom   float64 `yaml:"freedom"`
	Income    float64 `yaml:"income"`
	Education float64 `yaml:"education"`
	Cost      float64 `yaml:"cost"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AsWeights keys the vector by factor name.
func (w AnalysisWeights) AsWeights() analysis.Weights {
	return analysis.Weights{
		dataset.FactorFreedom:   w.Freedom,
		dataset.FactorIncome:    w.Income,
		dataset.FactorEducation: w.Education,
		dataset.FactorCost:      w.Cost,
	}
}

// Validate checks the analysis defaults.
func (c *Config) Validate() error {
	if err := c.Analysis.Weights.AsWeights().Validate(dataset.Factors()); err != nil {
		return fmt.Errorf("analysis weights: %w", err)
	}
	if c.Analysis.TopN < 1 {
		return fmt.Errorf("analysis top_n must be at least 1, got %d", c.Analysis.TopN)
	}
	for _, f := range []string{c.Analysis.FrontierX, c.Analysis.FrontierY} {
		if _, ok := dataset.Composition[f]; !ok {
			return fmt.Errorf("unknown frontier factor %q", f)
		}
	}
	if _, ok := dataset.LookupGroup(c.Analysis.DefaultGroup); !ok {
		return fmt.Errorf("unknown default group %q", c.Analysis.DefaultGroup)
	}
	return nil
}

// LogLevel maps the configured level name to a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Analysis: AnalysisConfig{
			Weights: AnalysisWeights{
				Freedom:   0.35,
				Income:    0.30,
				Education: 0.20,
				Cost:      0.15,
			},
			TopN:         analysis.DefaultTopN,
			FrontierX:    dataset.FactorFreedom,
			FrontierY:    dataset.FactorIncome,
			DefaultGroup: dataset.GroupOriginal,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PAYOFF_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PAYOFF_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PAYOFF_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("PAYOFF_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("PAYOFF_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("PAYOFF_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TopN = n
		}
	}
	if v := os.Getenv("PAYOFF_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PAYOFF_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
