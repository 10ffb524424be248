package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment = "ENVIRONMENT"
	Port        = "PORT"
	MongoURI    = "MONGO_URI"
)

// DotEnvFile is the file LoadDotEnv loads variables from, if it exists
var DotEnvFile = ".env"

// DotEnv records the outcome of loading DotEnvFile into the process environment.
// Providers that read the process environment directly take it as a dependency
// so they run after the file is loaded.
type DotEnv struct {
	File string
	Err  error
}

// LoadDotEnv loads DotEnvFile into the process environment. Variables already
// present in the process environment take precedence.
func LoadDotEnv() DotEnv {
	return DotEnv{
		File: DotEnvFile,
		Err:  godotenv.Load(DotEnvFile),
	}
}

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger, dotEnv DotEnv) *Env {
	if dotEnv.Err != nil {
		logger.Debug("env file not loaded, using process environment", zap.String("file", dotEnv.File), zap.Error(dotEnv.Err))
	}

	env := Env{
		vars: map[string]string{
			Environment: valueOfEnvVar(logger, Environment),
			Port:        valueOfEnvVar(logger, Port),
			MongoURI:    valueOfEnvVar(logger, MongoURI),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// Lookup returns the value of the environment variable with the specified name
// and whether it is set to a non-empty value
func (env *Env) Lookup(variableName string) (string, bool) {
	value := env.vars[variableName]
	return value, len(value) != 0
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
