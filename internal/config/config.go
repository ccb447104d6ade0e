// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Tool output limit defaults
const (
	DefaultListLimitValue   = 20
	DefaultSearchLimitValue = 10
)

// Processing safety cap defaults
const (
	MaxInferSamplesValue  = 1000
	MaxStoredSamplesValue = 20000
)

// Config holds all configuration for the MCP server.
type Config struct {
	InferWorkers     int  // INFER_WORKERS, default 8
	SampleMaxBytes   int  // SAMPLE_MAX_BYTES, default 2_000_000
	MaxStoredSamples int  // MAX_STORED_SAMPLES, default 20000
	SchemaCacheItems int  // SCHEMA_CACHE_MAX_ITEMS, default 256
	PreviewMaxBytes  int  // PREVIEW_MAX_BYTES, default 200
	CompileCheck     bool // COMPILE_CHECK, default true

	// Tool output limits
	DefaultListLimit   int // DEFAULT_LIST_LIMIT
	DefaultSearchLimit int // DEFAULT_SEARCH_LIMIT

	// Processing safety caps
	MaxInferSamples int // MAX_INFER_SAMPLES, default 1000

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		InferWorkers:     getEnvInt("INFER_WORKERS", 8),
		SampleMaxBytes:   getEnvInt("SAMPLE_MAX_BYTES", 2_000_000),
		MaxStoredSamples: getEnvInt("MAX_STORED_SAMPLES", MaxStoredSamplesValue),
		SchemaCacheItems: getEnvInt("SCHEMA_CACHE_MAX_ITEMS", 256),
		PreviewMaxBytes:  getEnvInt("PREVIEW_MAX_BYTES", 200),
		CompileCheck:     getEnvBool("COMPILE_CHECK", true),

		DefaultListLimit:   getEnvInt("DEFAULT_LIST_LIMIT", DefaultListLimitValue),
		DefaultSearchLimit: getEnvInt("DEFAULT_SEARCH_LIMIT", DefaultSearchLimitValue),

		MaxInferSamples: getEnvInt("MAX_INFER_SAMPLES", MaxInferSamplesValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
