package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for our application
type Config struct {
	// Data directory holding the JSON database files
	DataDir string

	// Password hashing
	BcryptCost int

	// Logging
	LogLevel  string
	LogFormat string
}

// Default locations probed when DATA_DIR is not set. Relative to the
// working directory, so the binary can be started from the repo root
// or from a build subdirectory.
var dataDirCandidates = []string{
	"./data",
	"../data",
	"../../data",
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		DataDir:    getEnv("DATA_DIR", ""),
		BcryptCost: getIntEnv("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}
}

// ResolveDataDir returns the directory holding the JSON database files.
// An explicit DATA_DIR wins; otherwise the fixed candidate list is probed.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		if err != nil {
			return "", fmt.Errorf("data directory %q: %w", c.DataDir, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("data directory %q is not a directory", c.DataDir)
		}
		return c.DataDir, nil
	}

	for _, candidate := range dataDirCandidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", err
			}
			return abs, nil
		}
	}
	return "", fmt.Errorf("data directory not found: set DATA_DIR or create one of %v", dataDirCandidates)
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
