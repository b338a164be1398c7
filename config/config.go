// Package config holds the defaults of the command line, read from the
// environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvCurrency      = "RR_CURRENCY"
	EnvVerbose       = "RR_VERBOSE"
	EnvWorkers       = "RR_WORKERS"
	EnvShowTransfers = "RR_SHOW_TRANSFERS"
)

// Config holds the defaults of the command line flags.
type Config struct {
	Currency      string
	Verbose       bool
	Workers       int
	ShowTransfers bool
}

// Load reads configuration from environment variables. A .env file in the
// current directory is loaded first if present, it never overrides variables
// already set.
func Load() Config {
	_ = godotenv.Load() // optional file
	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() Config {
	return Config{
		Currency:      getString(EnvCurrency, "USD"),
		Verbose:       getBool(EnvVerbose, false),
		Workers:       getInt(EnvWorkers, 1),
		ShowTransfers: getBool(EnvShowTransfers, false),
	}
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			log.Printf("invalid value for %s, using fallback: %v", key, err)
			return fallback
		}
		return b
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			log.Printf("invalid value for %s, using fallback: %v", key, err)
			return fallback
		}
		return i
	}
	return fallback
}
