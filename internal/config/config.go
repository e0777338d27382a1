package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfig indicates invalid configuration; startup must not proceed.
var ErrConfig = errors.New("invalid configuration")

// Config defines tracker configuration.
type Config struct {
	DB   DBConfig   `yaml:"db"`
	Log  LogConfig  `yaml:"log"`
	Risk RiskConfig `yaml:"risk"`
	Plan PlanConfig `yaml:"plan"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// RiskConfig controls the weighted risk formula.
type RiskConfig struct {
	HorizonHours int     `yaml:"horizon_hours"`
	Weights      Weights `yaml:"weights"`
}

// Weights are the factor weights of the risk score. They must sum to 1.
type Weights struct {
	Urgency  float64 `yaml:"urgency"`
	Workload float64 `yaml:"workload"`
	Priority float64 `yaml:"priority"`
}

type PlanConfig struct {
	DailyHoursBudget float64 `yaml:"daily_hours_budget"`
}

// Load reads configuration from an optional YAML file and environment
// variables, then validates it. A .env file in the working directory is
// applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DB: DBConfig{
			Path: "studytrack.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Risk: RiskConfig{
			HorizonHours: 168,
			Weights: Weights{
				Urgency:  0.5,
				Workload: 0.3,
				Priority: 0.2,
			},
		},
		Plan: PlanConfig{
			DailyHoursBudget: 8,
		},
	}

	if path := os.Getenv("STUDYTRACK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("STUDYTRACK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("STUDYTRACK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if horizonStr := os.Getenv("STUDYTRACK_HORIZON_HOURS"); horizonStr != "" {
		horizon, err := strconv.Atoi(horizonStr)
		if err != nil {
			return Config{}, fmt.Errorf("%w: invalid STUDYTRACK_HORIZON_HOURS: %v", ErrConfig, err)
		}
		cfg.Risk.HorizonHours = horizon
	}
	if budgetStr := os.Getenv("STUDYTRACK_DAILY_HOURS"); budgetStr != "" {
		budget, err := strconv.ParseFloat(budgetStr, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: invalid STUDYTRACK_DAILY_HOURS: %v", ErrConfig, err)
		}
		cfg.Plan.DailyHoursBudget = budget
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks configured bounds. Any failure is fatal at startup.
func (c Config) Validate() error {
	if c.Risk.HorizonHours <= 0 {
		return fmt.Errorf("%w: horizon_hours must be positive, got %d", ErrConfig, c.Risk.HorizonHours)
	}
	w := c.Risk.Weights
	if w.Urgency < 0 || w.Workload < 0 || w.Priority < 0 {
		return fmt.Errorf("%w: risk weights must be non-negative", ErrConfig)
	}
	if sum := w.Urgency + w.Workload + w.Priority; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: risk weights must sum to 1.0, got %g", ErrConfig, sum)
	}
	if c.Plan.DailyHoursBudget <= 0 {
		return fmt.Errorf("%w: daily_hours_budget must be positive, got %g", ErrConfig, c.Plan.DailyHoursBudget)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config file: %v", ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse config file: %v", ErrConfig, err)
	}
	return nil
}
