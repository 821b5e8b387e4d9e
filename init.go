package pantalib

import (
	"os"
	"strconv"

	"github.com/raykavin/pantalib/pkg/logger/zerolog"
)

const (
	// Default configuration values
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "PANTALIB_LOG_LEVEL"
	envLogTimeFormat = "PANTALIB_LOG_TIME_FORMAT"
	envLogColor      = "PANTALIB_LOG_COLOR"
	envLogJSON       = "PANTALIB_LOG_JSON"
)

func init() {
	// Initialize the logger with configuration from environment variables
	config, err := LogConfigFromEnv()
	if err != nil {
		panic(err)
	}

	log, err := zerolog.New(config)
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// LogConfigFromEnv reads the logger configuration from PANTALIB_LOG_* environment variables
func LogConfigFromEnv() (zerolog.Config, error) {
	// Parse boolean configurations
	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return zerolog.Config{}, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return zerolog.Config{}, err
	}

	return zerolog.Config{
		Level:      getEnvWithDefault(envLogLevel, defaultLogLevel),
		TimeFormat: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:    logColored,
		JSON:       logJSON,
		Output:     os.Stderr,
	}, nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	value := getEnvWithDefault(key, defaultValue)
	return strconv.ParseBool(value)
}
