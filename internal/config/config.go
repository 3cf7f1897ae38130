package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

type Config struct {
	LogLevel slog.Level
	Output   Output

	// Values that were set but not understood, keyed by variable name.
	Rejected map[string]string
}

// Load reads .env and .env.local, if present, then the process environment.
func Load() Config {
	loadEnvFiles()

	cfg := Config{
		LogLevel: slog.LevelError,
		Output:   OutputText,
		Rejected: map[string]string{},
	}

	if v := os.Getenv("LIBRARY_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			cfg.Rejected["LIBRARY_LOG_LEVEL"] = v
		} else {
			cfg.LogLevel = lvl
		}
	}

	if v := os.Getenv("LIBRARY_OUTPUT"); v != "" {
		switch o := Output(strings.ToLower(v)); o {
		case OutputText, OutputJSON:
			cfg.Output = o
		default:
			cfg.Rejected["LIBRARY_OUTPUT"] = v
		}
	}

	return cfg
}

func loadEnvFiles() {
	// Do not override environment provided by the caller.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
