// Package config reads service settings from the environment, optionally
// populated from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/cookbook/internal/engine"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// Env var names.
const (
	EnvAddr        = "COOKBOOK_ADDR"
	EnvLogLevel    = "COOKBOOK_LOG_LEVEL"
	EnvLogFile     = "COOKBOOK_LOG_FILE"
	EnvMaxDepth    = "COOKBOOK_MAX_DEPTH"
	EnvCORSOrigins = "COOKBOOK_CORS_ORIGINS"
	EnvSeed        = "COOKBOOK_SEED"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Addr        string
	LogLevel    logger.Level
	LogFile     string // empty or "stderr" logs to the console
	MaxDepth    int
	CORSOrigins []string
	Seed        bool // preload the sample cookbook
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    logger.LevelNormal,
		MaxDepth:    engine.DefaultMaxDepth,
		CORSOrigins: []string{"*"},
	}
}

// LoadDotEnv loads the given .env files (".env" when none are given) into
// the process environment. Missing files are not an error; variables that
// are already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	return Parse(os.Getenv)
}

// Parse builds a Config from the given lookup function, starting from
// Default. Unset variables keep their defaults.
func Parse(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	cfg.LogFile = getenv(EnvLogFile)
	if v := getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s: must be a positive integer, got %q", EnvMaxDepth, v)
		}
		cfg.MaxDepth = n
	}
	if v := getenv(EnvCORSOrigins); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := getenv(EnvSeed); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = b
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
