package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config interface {
	EnvConfig
	OAuthConfig
	TransportConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	OAuth
	Transport
}

func New() Config {
	return mainConfig{}
}

// Load reads KEY=VALUE pairs from files into the environment without
// overriding variables that are already set. With no files it reads ".env"
// when present.
func Load(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "[config.Load] failed to load env files")
	}
	return nil
}
