package config

import (
	"os"
	"strings"
)

const (
	appNameVar  = "APP_NAME"
	envVar      = "ENV"
	logLevelVar = "LOG_LEVEL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "OAuth Client")
}

func (EnvVars) GetEnv() string {
	return strings.ToUpper(GetEnv(envVar, "DEV"))
}

// GetLogLevel returns a zerolog level name; debug in DEV, info otherwise.
func (e EnvVars) GetLogLevel() string {
	if level := os.Getenv(logLevelVar); level != "" {
		return level
	}
	if e.GetEnv() == "DEV" {
		return "debug"
	}
	return "info"
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
