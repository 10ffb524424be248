package config

import (
	"bytes"
	"embed"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_app/environment"

	"go.uber.org/config"
)

//go:embed files/*.yaml
var configFiles embed.FS

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name     string         `yaml:"name"`
	Welcome  string         `yaml:"welcome"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port int `yaml:"port"`
	// Mode is the gin mode, one of debug, release or test
	Mode string `yaml:"mode"`
}

// DatabaseConfig holds the fixed options used when connecting to MongoDB
type DatabaseConfig struct {
	// Name is used when the connection URI does not name a database
	Name           string        `yaml:"name"`
	PoolSize       uint64        `yaml:"pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type HTTPConfig struct {
	CORS CORSConfig `yaml:"cors"`
	JSON JSONConfig `yaml:"json"`
}

type CORSConfig struct {
	AllowOrigins []string      `yaml:"allow_origins"`
	AllowMethods []string      `yaml:"allow_methods"`
	AllowHeaders []string      `yaml:"allow_headers"`
	MaxAge       time.Duration `yaml:"max_age"`
}

type JSONConfig struct {
	// Limit is the maximum accepted request body size in bytes
	Limit int64 `yaml:"limit"`
	// Strict only accepts objects and arrays as the top-level value
	Strict bool `yaml:"strict"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	files := []string{"base.yaml"}
	if env.Get(environment.Environment) == "prod" {
		files = append(files, "production.yaml")
	} else if env.Get(environment.Environment) == "dev" {
		files = append(files, "development.yaml")
	}

	options := []config.YAMLOption{config.Expand(env.Lookup)}
	for _, file := range files {
		contents, err := configFiles.ReadFile("files/" + file)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", file)
		}
		options = append(options, config.Source(bytes.NewReader(contents)))
	}

	configProvider, err := config.NewYAML(options...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return nil, errors.Errorf("invalid port %d", cfg.Server.Port)
	}

	return &cfg, nil
}
