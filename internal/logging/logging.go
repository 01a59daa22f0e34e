// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       true,
		FilePath:   filepath.Join(home, ".config", "options-desk", "logs", "odesk.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// LogPriceRequest logs one pricing request with its result.
func LogPriceRequest(logger zerolog.Logger, kind string, spot, strike, sigma, tte, price float64) {
	logger.Debug().
		Str("event", "price").
		Str("kind", kind).
		Float64("spot", spot).
		Float64("strike", strike).
		Float64("sigma", sigma).
		Float64("tte", tte).
		Float64("price", price).
		Msg("Priced contract")
}

// LogSolve logs one root-finder inversion.
func LogSolve(logger zerolog.Logger, axis string, target, result float64, err error) {
	event := logger.Debug().
		Str("event", "solve").
		Str("axis", axis).
		Float64("target", target)
	if err != nil {
		event.Err(err).Msg("Solve failed")
		return
	}
	event.Float64("result", result).Msg("Solve converged")
}

// LogStrategyBuild logs one strategy build.
func LogStrategyBuild(logger zerolog.Logger, name, policy string, legs int, netPremium float64) {
	logger.Info().
		Str("event", "strategy_build").
		Str("strategy", name).
		Str("policy", policy).
		Int("legs", legs).
		Float64("net_premium", netPremium).
		Msg("Strategy built")
}
