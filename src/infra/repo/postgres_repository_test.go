package repo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beerfactory/src/core/domain"
	"beerfactory/src/infra/config"
	"beerfactory/src/infra/db"
)

const createBeersTable = `
	CREATE TABLE IF NOT EXISTS beers (
	    id                 uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	    version            bigint NOT NULL DEFAULT 1,
	    created_date       timestamptz NOT NULL DEFAULT now(),
	    last_modified_date timestamptz NOT NULL DEFAULT now(),
	    beer_name          varchar(255) NOT NULL,
	    beer_style         varchar(32) NOT NULL,
	    upc                bigint NOT NULL,
	    price              numeric(12,2) NOT NULL,
	    quantity_on_hand   integer NOT NULL DEFAULT 0,
	    UNIQUE (upc)
	)
`

// newTestRepository connects using APP_DB_* env vars (defaults target a
// local Postgres) and skips the test when no database is reachable.
func newTestRepository(t *testing.T) *PostgresBeerRepository {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(pg.Close)

	_, err = pg.Pool.Exec(context.Background(), createBeersTable)
	require.NoError(t, err)

	return NewPostgresBeerRepository(pg, log)
}

func TestPostgresBeerRepository_CRUD(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	beer := &domain.Beer{
		BeerName:       "Integration Ale",
		BeerStyle:      domain.StyleAle,
		UPC:            time.Now().UnixNano(), // unique per run
		Price:          decimal.RequireFromString("9.99"),
		QuantityOnHand: 12,
	}

	saved, err := r.Save(ctx, beer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Delete(ctx, saved.ID) })

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, int64(1), saved.Version)
	assert.False(t, saved.CreatedDate.IsZero())
	assert.True(t, beer.Price.Equal(saved.Price))

	found, err := r.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "Integration Ale", found.BeerName)
	assert.Equal(t, domain.StyleAle, found.BeerStyle)
	assert.True(t, saved.Price.Equal(found.Price))

	found.BeerName = "Integration Ale v2"
	found.QuantityOnHand = 6
	require.NoError(t, r.Update(ctx, saved.ID, found))

	updated, err := r.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Integration Ale v2", updated.BeerName)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, 6, updated.QuantityOnHand)
	assert.True(t, updated.LastModifiedDate.After(updated.CreatedDate) ||
		updated.LastModifiedDate.Equal(updated.CreatedDate))

	require.NoError(t, r.Delete(ctx, saved.ID))

	_, err = r.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresBeerRepository_UpdateMissing(t *testing.T) {
	r := newTestRepository(t)

	err := r.Update(context.Background(), uuid.New(), &domain.Beer{
		BeerName:  "Ghost Beer",
		BeerStyle: domain.StyleStout,
		UPC:       time.Now().UnixNano(),
		Price:     decimal.RequireFromString("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
