package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# options-desk configuration

[market]
# Default annual risk-free rate (decimal)
risk_free_rate = 0.02
# Default annual dividend/carry yield (decimal)
dividend_yield = 0.0
# Reference average volatility for the iv-adjusted strike policy
reference_avg_vol = 0.20

[solver]
# Implied-volatility bisection tolerance
iv_tolerance = 1e-6
# Strike-for-delta bisection tolerance (relative to spot)
strike_tolerance = 1e-4

[grid]
# Number of payoff grid points
points = 250
# Grid spans lower_factor*spot .. upper_factor*spot
lower_factor = 0.5
upper_factor = 1.5

[ui]
# Enable colored output
color_enabled = true
`

// createTemplateConfig writes a commented config template so the user has
// something to edit on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
