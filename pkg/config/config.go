package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is the optional env file read at startup.
	ConstantConfigFilename = "/etc/default/cpu-affinity"

	// Defaults
	DefaultLogLevel = "info"
	// DefaultFallback controls whether the CLI substitutes the portable
	// online CPU count when the affinity query is unavailable.
	DefaultFallback = true
)

type Config struct {
	LogLevel string
	Fallback bool
}

// Load reads the env file (if present) and the CAP_* environment
// variables. A missing file is not an error; the environment alone wins.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		LogLevel: getEnv("CAP_LOG_LEVEL", DefaultLogLevel),
		Fallback: getEnvBool("CAP_FALLBACK", DefaultFallback),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
