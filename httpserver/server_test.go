// nolint: funlen
package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reelfinder/errs"
	"reelfinder/httpserver"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.AllowOrigins = "https://reelfinder.example, https://admin.reelfinder.example"
	cfg.RateLimit = 5

	// Act
	server := httpserver.Default(cfg)

	// Assert
	assert.NotNil(t, server.Router)
	assert.Equal(t, ":8080", server.Addr)
	assert.Equal(t, []string{"https://reelfinder.example", "https://admin.reelfinder.example"}, server.AllowOrigins)
	assert.Equal(t, 5.0, server.RateLimit)
}

func TestDefault_FallbackRateLimit(t *testing.T) {
	server := httpserver.Default(testConfig())

	assert.Equal(t, 20.0, server.RateLimit)
	assert.Equal(t, []string{"*"}, server.AllowOrigins)
}

func TestServerStartAndShutdown(t *testing.T) {
	// Arrange
	server := httpserver.Default(testConfig())
	port := allocateRandomPort(t)
	server.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	// Act
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Assert
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/healthcheck", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRegisterGlobalMiddlewares(t *testing.T) {
	// Arrange
	server, _ := newTestServer(t)

	// Act
	response := makeRequest(server, http.MethodGet, "/healthcheck", nil)

	// Assert
	assert.Equal(t, http.StatusOK, response.Code)
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXRequestID))
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestCORSConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		allowOrigins  string
		requestOrigin string
		expectOrigin  string
	}{
		{
			name:          "wildcard allows all origins",
			allowOrigins:  "*",
			requestOrigin: "https://example.com",
			expectOrigin:  "*",
		},
		{
			name:          "listed origin is echoed",
			allowOrigins:  "https://reelfinder.example",
			requestOrigin: "https://reelfinder.example",
			expectOrigin:  "https://reelfinder.example",
		},
		{
			name:          "other origin gets no header",
			allowOrigins:  "https://reelfinder.example",
			requestOrigin: "https://evil.example",
			expectOrigin:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := testConfig()
			cfg.AllowOrigins = tt.allowOrigins
			server := httpserver.Default(cfg)

			// Act
			response := makeRequest(server, http.MethodGet, "/healthcheck", map[string]string{
				echo.HeaderOrigin: tt.requestOrigin,
			})

			// Assert
			assert.Equal(t, tt.expectOrigin, response.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.RateLimit = 1
	server := httpserver.Default(cfg)

	// Act
	first := makeRequest(server, http.MethodGet, "/healthcheck", nil)
	second := makeRequest(server, http.MethodGet, "/healthcheck", nil)

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestMiddlewareRecoveryBehavior(t *testing.T) {
	// Arrange
	server, _ := newTestServer(t)
	server.Router.GET("/panic", func(c echo.Context) error {
		panic("template exploded")
	})

	// Act
	response := makeRequest(server, http.MethodGet, "/panic", nil)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, response.Code)
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name               string
		error              error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "invalid query returns 400",
			error:              errs.Errorf(errs.EINVALID, "Please enter a movie title to search."),
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "100010",
			expectedMessage:    "Please enter a movie title to search.",
		},
		{
			name:               "unknown title returns 404",
			error:              errs.Errorf(errs.ENOTFOUND, "Incorrect IMDb ID."),
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "100404",
			expectedMessage:    "Incorrect IMDb ID.",
		},
		{
			name:               "missing service returns 501",
			error:              errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured"),
			expectedStatusCode: http.StatusNotImplemented,
			expectedCode:       "100501",
			expectedMessage:    "movie service not configured",
		},
		{
			name:               "upstream error returns 502 with the upstream message",
			error:              errs.Errorf(errs.EUPSTREAM, "Movie not found!"),
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "100502",
			expectedMessage:    "Movie not found!",
		},
		{
			name:               "unavailable error returns 503",
			error:              errs.Errorf(errs.EUNAVAILABLE, "Failed to search movies. Please try again."),
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "100503",
			expectedMessage:    "Failed to search movies. Please try again.",
		},
		{
			name:               "internal error hides its message",
			error:              errs.Errorf(errs.EINTERNAL, "decode cache entry"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "100500",
			expectedMessage:    "Internal server error",
		},
		{
			name:               "plain error returns 500",
			error:              fmt.Errorf("render: %w", errors.New("broken pipe")),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "100500",
			expectedMessage:    "Internal server error",
		},
		{
			name:               "echo http error preserves status code",
			error:              echo.NewHTTPError(http.StatusForbidden, "forbidden"),
			expectedStatusCode: http.StatusForbidden,
			expectedCode:       "100403",
			expectedMessage:    "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server, _ := newTestServer(t)
			server.Router.GET("/error", func(c echo.Context) error {
				return tt.error
			})

			// Act
			response := makeRequest(server, http.MethodGet, "/error", nil)

			// Assert
			assert.Equal(t, tt.expectedStatusCode, response.Code)
			resp := decodeAPIResponse(t, response)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func allocateRandomPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}
