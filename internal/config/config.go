// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the settings the CLI uses as flag defaults.
type Config struct {
	ReportProgress bool
	ReportWarnings bool
	StartingRowNum int    `validate:"min=1"`
	ListDelimiter  string `validate:"required"`
	Format         string `validate:"oneof=json yaml"`
	LogLevel       string `validate:"oneof=ERROR WARN INFO DEBUG"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ReportProgress: true,
		ReportWarnings: true,
		StartingRowNum: 1,
		ListDelimiter:  ",",
		Format:         "json",
		LogLevel:       "INFO",
	}
}

// Load reads an optional .env file from the working directory, then the
// SHEETPARSE_* and LOG_LEVEL variables, and validates the result.
func Load() (*Config, error) {
	// A missing .env file is not an error; the process environment applies.
	_ = godotenv.Load()
	return FromEnv()
}

// LoadFile reads the given .env files before the environment.
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	def := Default()
	cfg := &Config{
		ReportProgress: getEnvBoolOrDefault("SHEETPARSE_REPORT_PROGRESS", def.ReportProgress),
		ReportWarnings: getEnvBoolOrDefault("SHEETPARSE_REPORT_WARNINGS", def.ReportWarnings),
		StartingRowNum: getEnvIntOrDefault("SHEETPARSE_STARTING_ROW", def.StartingRowNum),
		ListDelimiter:  getEnvOrDefault("SHEETPARSE_LIST_DELIMITER", def.ListDelimiter),
		Format:         getEnvOrDefault("SHEETPARSE_FORMAT", def.Format),
		LogLevel:       normalizeLogLevel(getEnvOrDefault("LOG_LEVEL", def.LogLevel)),
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// normalizeLogLevel upper-cases a level name and maps the WARNING alias to WARN.
func normalizeLogLevel(s string) string {
	level := strings.ToUpper(strings.TrimSpace(s))
	if level == "WARNING" {
		return "WARN"
	}
	return level
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
