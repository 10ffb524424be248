//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/environment"
	"github.com/unicsmcr/hs_app/routers"
	"github.com/unicsmcr/hs_app/services/mongo"
	"github.com/unicsmcr/hs_app/supervisor"
	"github.com/unicsmcr/hs_app/utils"
)

func InitializeServer() (Server, func(), error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		mongo.NewMongoHealthService,
		supervisor.NewSupervisor,
		utils.NewDatabase,
		utils.NewMetricsRegistry,
		environment.NewEnv,
		environment.LoadDotEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil, nil
}
