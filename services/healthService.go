package services

import "context"

//go:generate mockgen -destination=../mocks/services/mock_healthService.go -package=mock_services github.com/unicsmcr/hs_app/services HealthService

// HealthService reports on the availability of the services the server depends on
type HealthService interface {
	CheckDatabase(ctx context.Context) error
}
