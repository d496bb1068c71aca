package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"reelfinder/httpserver"
	"reelfinder/movie"
	"reelfinder/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Search(ctx context.Context, q movie.Query) (movie.Page, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(movie.Page), args.Error(1)
}

func (m *MockMovieService) Details(ctx context.Context, id string) (movie.Detail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Detail), args.Error(1)
}

func newTestServer(t *testing.T) (*httpserver.Server, *MockMovieService) {
	t.Helper()
	server := httpserver.Default(testConfig())
	server.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := new(MockMovieService)
	server.MovieService = svc
	return server, svc
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func batmanPage(page int) movie.Page {
	return movie.Page{
		Items: []movie.Movie{
			{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Kind: movie.KindMovie, Poster: "https://img.example/begins.jpg"},
			{ID: "tt1877830", Title: "The Batman", Year: "2022", Kind: movie.KindMovie, Poster: movie.NotAvailable},
			{ID: "tt0103359", Title: "Batman: The Animated Series", Year: "1992–1995", Kind: movie.KindSeries, Poster: "https://img.example/tas.jpg"},
		},
		TotalResults: 30,
		Page:         page,
	}
}
