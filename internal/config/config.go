package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSampleValues = "50,38,32,37,19,19,102"
	DefaultPigLatinText = "Relaxing in basins at the end of inlets terminates the endless tests from the box"
	DefaultMaxValues    = 10000
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	SampleValues        []int
	PigLatinText        string
	EnableMermaidCharts bool
	MaxValues           int
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	values, err := ParseValues(getEnv("SAMPLE_VALUES", DefaultSampleValues))
	if err != nil {
		return nil, fmt.Errorf("invalid SAMPLE_VALUES: %w", err)
	}

	maxValues, err := strconv.Atoi(getEnv("MAX_VALUES", strconv.Itoa(DefaultMaxValues)))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_VALUES: %w", err)
	}
	if maxValues <= 0 {
		return nil, fmt.Errorf("invalid MAX_VALUES: must be positive, got %d", maxValues)
	}

	return &AppConfig{
		SampleValues:        values,
		PigLatinText:        getEnv("PIGLATIN_TEXT", DefaultPigLatinText),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
		MaxValues:           maxValues,
	}, nil
}

// ParseValues parses integers separated by commas and/or whitespace.
// An empty string yields an empty, non-nil slice.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
