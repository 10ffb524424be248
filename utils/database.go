package utils

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// NewDatabase connects to the MongoDB instance at MONGO_URI and returns the database
// named in the URI, falling back to the configured name. The connection is attempted
// once; the returned cleanup function disconnects the client.
func NewDatabase(logger *zap.Logger, env *environment.Env, cfg *config.AppConfig) (*mongo.Database, func(), error) {
	uri, ok := env.Lookup(environment.MongoURI)
	if !ok {
		err := errors.Errorf("%s is not set", environment.MongoURI)
		logger.Error("error connecting to MongoDB", zap.Error(err))
		return nil, nil, err
	}

	connString, err := connstring.ParseAndValidate(uri)
	if err != nil {
		logger.Error("error connecting to MongoDB", zap.Error(err))
		return nil, nil, errors.Wrap(err, "invalid MongoDB connection string")
	}

	databaseName := connString.Database
	if len(databaseName) == 0 {
		databaseName = cfg.Database.Name
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(uri, cfg.Database))
	if err != nil {
		logger.Error("error connecting to MongoDB", zap.Error(err))
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("error connecting to MongoDB", zap.Error(err))
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}
	logger.Info("connected to MongoDB", zap.String("database", databaseName), zap.Uint64("pool_size", cfg.Database.PoolSize))

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("could not disconnect from MongoDB", zap.Error(err))
		}
	}

	return client.Database(databaseName), cleanup, nil
}

func clientOptions(uri string, cfg config.DatabaseConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.PoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
}
