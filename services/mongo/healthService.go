package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_app/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// pinger is satisfied by *mongo.Client
type pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type mongoHealthService struct {
	logger *zap.Logger
	client pinger
}

// NewMongoHealthService creates a new HealthService that checks the MongoDB deployment backing db
func NewMongoHealthService(logger *zap.Logger, db *mongo.Database) services.HealthService {
	return &mongoHealthService{
		logger: logger,
		client: db.Client(),
	}
}

func (s *mongoHealthService) CheckDatabase(ctx context.Context) error {
	err := s.client.Ping(ctx, readpref.Primary())
	if err != nil {
		s.logger.Warn("database did not respond to ping", zap.Error(err))
		return errors.Wrap(services.ErrDatabaseUnavailable, err.Error())
	}

	return nil
}
