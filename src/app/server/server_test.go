package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beerfactory/src/app/server"
	"beerfactory/src/core/domain"
	"beerfactory/src/infra/config"
)

// stubBeerRepo satisfies ports.BeerRepository for routing tests.
type stubBeerRepo struct{}

func (stubBeerRepo) Health(ctx context.Context) error { return nil }

func (stubBeerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	return nil, domain.NewNotFoundError("beer")
}

func (stubBeerRepo) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	return beer, nil
}

func (stubBeerRepo) Update(ctx context.Context, id uuid.UUID, beer *domain.Beer) error {
	return nil
}

func (stubBeerRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Log.Level = "info"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := server.New(cfg, log, stubBeerRepo{})
	require.NoError(t, err)
	return srv
}

func TestUnknownRouteReturnsErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "The requested resource was not found", body.Error.Message)
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
