// Package config collects the environment knobs shared by the game commands.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults for every knob; the environment overrides them one at a time.
const (
	DefaultSearchDepth = 0 // zero solves the game outright
	DefaultLogLevel    = "info"

	DefaultKaylesPins      = "3 4 5"
	DefaultCrossoutTiles   = 9
	DefaultCrossoutMaxSum  = 10
	DefaultConnect3Columns = 4
	DefaultConnect3Rows    = 4
)

// Config carries the tunable settings for a solver run.
type Config struct {
	SearchDepth int
	LogLevel    string

	KaylesPins      []int
	CrossoutTiles   int
	CrossoutMaxSum  int
	Connect3Columns int
	Connect3Rows    int
}

// LoadConfig reads the optional .env file and then the process environment.
// Malformed values fall back to their defaults with a warning.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	return &Config{
		SearchDepth:     GetEnvAsInt("SEARCH_DEPTH", DefaultSearchDepth),
		LogLevel:        GetEnv("LOG_LEVEL", DefaultLogLevel),
		KaylesPins:      getEnvAsInts("KAYLES_PINS", DefaultKaylesPins),
		CrossoutTiles:   GetEnvAsInt("CROSSOUT_TILES", DefaultCrossoutTiles),
		CrossoutMaxSum:  GetEnvAsInt("CROSSOUT_MAX_SUM", DefaultCrossoutMaxSum),
		Connect3Columns: GetEnvAsInt("CONNECT3_COLUMNS", DefaultConnect3Columns),
		Connect3Rows:    GetEnvAsInt("CONNECT3_ROWS", DefaultConnect3Rows),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsInts parses a whitespace-separated integer list, as used for the
// Kayles pin groups.
func getEnvAsInts(key, defaultValue string) []int {
	valueStr := GetEnv(key, defaultValue)
	values, err := ParseInts(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer list for %s: %q, using default %q", key, valueStr, defaultValue)
		values, _ = ParseInts(defaultValue)
	}
	return values
}

// ParseInts splits a whitespace-separated list into its integer values.
func ParseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
