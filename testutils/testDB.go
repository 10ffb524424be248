//go:build integration
// +build integration

package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage       = "mongo:7"
	mongoPort        = "27017/tcp"
	dbDatabase       = "hs_app"
	containerTimeout = 2 * time.Minute
)

// StartIntegrationTestDB starts a throwaway MongoDB container and returns a connection
// URI for it. The container is terminated when the test finishes.
func StartIntegrationTestDB(t *testing.T) string {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{mongoPort},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(containerTimeout),
		},
		Started: true,
	})
	require.NoError(t, err, "could not start mongo container")

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("could not terminate mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, mongoPort)
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s/%s", host, port.Port(), dbDatabase)
}
