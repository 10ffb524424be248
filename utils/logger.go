package utils

import (
	"os"

	"github.com/unicsmcr/hs_app/environment"
	"go.uber.org/zap"
)

// NewLogger creates a JSON production logger when ENVIRONMENT is prod and a
// human-readable development logger otherwise. ENVIRONMENT may come from the
// .env file, hence the dependency on the loaded DotEnv.
func NewLogger(_ environment.DotEnv) (*zap.Logger, error) {
	if os.Getenv(environment.Environment) == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
