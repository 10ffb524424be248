package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/environment"
	mock_services "github.com/unicsmcr/hs_app/mocks/services"
	"github.com/unicsmcr/hs_app/routers"
	"github.com/unicsmcr/hs_app/supervisor"
	"github.com/unicsmcr/hs_app/testutils"
)

// set in the child process started by Test_main__should_exit_with_code_1_when_database_connection_fails
const runMainEnvVar = "HS_APP_TEST_RUN_MAIN"

const testWelcome = "Welcome to the Mongoose best practices app!"

type serverTestSetup struct {
	server    Server
	exitCodes []int
}

func testAppConfig(port int) *config.AppConfig {
	return &config.AppConfig{
		Welcome: testWelcome,
		Server: config.ServerConfig{
			Port: port,
			Mode: gin.TestMode,
		},
		HTTP: config.HTTPConfig{
			CORS: config.CORSConfig{
				AllowOrigins: []string{"*"},
				AllowMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
			},
			JSON: config.JSONConfig{
				Limit:  1024,
				Strict: true,
			},
		},
	}
}

func setupServerTest(t *testing.T, port int) *serverTestSetup {
	ctrl := gomock.NewController(t)
	mockHealthService := mock_services.NewMockHealthService(ctrl)
	mockHealthService.EXPECT().CheckDatabase(gomock.Any()).Return(nil).AnyTimes()

	setup := &serverTestSetup{}
	cfg := testAppConfig(port)
	registry := prometheus.NewRegistry()
	sup := supervisor.NewSupervisorWithExit(zap.NewNop(), func(code int) {
		setup.exitCodes = append(setup.exitCodes, code)
	})
	mainRouter := routers.NewMainRouter(zap.NewNop(), cfg, mockHealthService, registry)

	setup.server = NewServer(zap.NewNop(), cfg, mainRouter, sup, registry)
	return setup
}

func Test_NewServer__should_serve_welcome_text_on_root(t *testing.T) {
	setup := setupServerTest(t, 5000)

	w := httptest.NewRecorder()
	setup.server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testWelcome, w.Body.String())
	assert.Equal(t, 5000, setup.server.Port)
}

func Test_NewServer__should_reject_malformed_json_before_route_dispatch(t *testing.T) {
	setup := setupServerTest(t, 5000)
	reached := false
	setup.server.POST("/echo", func(ctx *gin.Context) {
		reached = true
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"broken":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://client.test")
	w := httptest.NewRecorder()
	setup.server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, reached)
	// CORS runs before the JSON parser, so even rejected requests carry its headers
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func Test_NewServer__should_exit_with_code_1_when_handler_panics(t *testing.T) {
	setup := setupServerTest(t, 5000)
	setup.server.GET("/panic", func(ctx *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	setup.server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, []int{supervisor.ExitCode}, setup.exitCodes)
}

func Test_NewServer__should_count_requests_on_metrics_endpoint(t *testing.T) {
	setup := setupServerTest(t, 5000)

	setup.server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	w := httptest.NewRecorder()
	setup.server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hs_app_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func Test_Listen__should_serve_requests_on_bound_port(t *testing.T) {
	setup := setupServerTest(t, 0)

	listener, err := setup.server.Listen()
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		_ = setup.server.RunListener(listener)
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	res, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, testWelcome, string(body))
}

func Test_Listen__should_return_error_when_port_is_taken(t *testing.T) {
	setup := setupServerTest(t, 0)

	listener, err := setup.server.Listen()
	require.NoError(t, err)
	defer listener.Close()

	setup.server.Port = listener.Addr().(*net.TCPAddr).Port
	_, err = setup.server.Listen()
	assert.Error(t, err)
}

func Test_InitializeServer__should_return_error_when_MONGO_URI_not_set(t *testing.T) {
	restoreVars := testutils.UnsetVars(environment.MongoURI)
	defer restoreVars()

	_, cleanup, err := InitializeServer()

	assert.Error(t, err)
	assert.Nil(t, cleanup)
}

func Test_InitializeServer__should_return_error_when_MONGO_URI_is_invalid(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.MongoURI: "not-a-mongo-uri"})
	defer restoreVars()

	_, cleanup, err := InitializeServer()

	assert.Error(t, err)
	assert.Nil(t, cleanup)
}

func Test_main__should_exit_with_code_1_when_database_connection_fails(t *testing.T) {
	if os.Getenv(runMainEnvVar) == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^Test_main__should_exit_with_code_1_when_database_connection_fails$")
	cmd.Env = append(os.Environ(), runMainEnvVar+"=1", environment.MongoURI+"=not-a-mongo-uri")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
