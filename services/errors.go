package services

import "errors"

var (
	// ErrDatabaseUnavailable is the error returned by HealthService
	// when the database does not respond to a ping
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
