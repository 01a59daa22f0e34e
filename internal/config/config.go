// Package config provides configuration management for the analytics CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "options-desk/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Market Market `mapstructure:"market"`
	Solver Solver `mapstructure:"solver"`
	Grid   Grid   `mapstructure:"grid"`
	UI     UI     `mapstructure:"ui"`
}

// Market holds the default market assumptions used when a command does not
// override them.
type Market struct {
	RiskFreeRate    float64 `mapstructure:"risk_free_rate"`
	DividendYield   float64 `mapstructure:"dividend_yield"`
	ReferenceAvgVol float64 `mapstructure:"reference_avg_vol"`
}

// Solver holds root-finder tolerances.
type Solver struct {
	IVTolerance     float64 `mapstructure:"iv_tolerance"`
	StrikeTolerance float64 `mapstructure:"strike_tolerance"`
}

// Grid holds the payoff grid shape: point count and the span around spot.
type Grid struct {
	Points      int     `mapstructure:"points"`
	LowerFactor float64 `mapstructure:"lower_factor"`
	UpperFactor float64 `mapstructure:"upper_factor"`
}

// UI holds UI-related configuration.
type UI struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/options-desk"
	}
	return filepath.Join(home, ".config", "options-desk")
}

// Default returns the built-in configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Market: Market{
			RiskFreeRate:    0.02,
			DividendYield:   0.0,
			ReferenceAvgVol: 0.20,
		},
		Solver: Solver{
			IVTolerance:     1e-6,
			StrikeTolerance: 1e-4,
		},
		Grid: Grid{
			Points:      250,
			LowerFactor: 0.5,
			UpperFactor: 1.5,
		},
		UI: UI{ColorEnabled: true},
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty, uses the default config directory. A missing config file writes a
// commented template and falls back to the defaults.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("market.risk_free_rate", cfg.Market.RiskFreeRate)
	v.SetDefault("market.dividend_yield", cfg.Market.DividendYield)
	v.SetDefault("market.reference_avg_vol", cfg.Market.ReferenceAvgVol)
	v.SetDefault("solver.iv_tolerance", cfg.Solver.IVTolerance)
	v.SetDefault("solver.strike_tolerance", cfg.Solver.StrikeTolerance)
	v.SetDefault("grid.points", cfg.Grid.Points)
	v.SetDefault("grid.lower_factor", cfg.Grid.LowerFactor)
	v.SetDefault("grid.upper_factor", cfg.Grid.UpperFactor)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ODESK_RISK_FREE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Market.RiskFreeRate = f
		}
	}
	if v := os.Getenv("ODESK_DIVIDEND_YIELD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Market.DividendYield = f
		}
	}
	if v := os.Getenv("ODESK_REFERENCE_AVG_VOL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Market.ReferenceAvgVol = f
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Market.ReferenceAvgVol < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "market.reference_avg_vol must be non-negative")
	}
	if c.Solver.IVTolerance <= 0 || c.Solver.StrikeTolerance <= 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "solver tolerances must be positive")
	}
	if c.Grid.Points < 2 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "grid.points must be at least 2")
	}
	if c.Grid.LowerFactor <= 0 || c.Grid.UpperFactor <= c.Grid.LowerFactor {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "grid span must satisfy 0 < lower_factor < upper_factor")
	}
	return nil
}
