package usecase_test

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
	"beerfactory/src/core/usecase"
)

// mockBeerRepo captures repository calls for inspection.
type mockBeerRepo struct {
	beers    map[uuid.UUID]domain.Beer
	saveArgs []domain.Beer
}

func newMockBeerRepo() *mockBeerRepo {
	return &mockBeerRepo{beers: make(map[uuid.UUID]domain.Beer)}
}

func (m *mockBeerRepo) Health(ctx context.Context) error { return nil }

func (m *mockBeerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	if beer, ok := m.beers[id]; ok {
		return &beer, nil
	}
	return nil, domain.NewNotFoundError("beer")
}

func (m *mockBeerRepo) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	m.saveArgs = append(m.saveArgs, *beer)
	saved := *beer
	saved.ID = uuid.New()
	saved.Version = 1
	saved.CreatedDate = time.Now().UTC()
	saved.LastModifiedDate = saved.CreatedDate
	m.beers[saved.ID] = saved
	return &saved, nil
}

func (m *mockBeerRepo) Update(ctx context.Context, id uuid.UUID, beer *domain.Beer) error {
	if _, ok := m.beers[id]; !ok {
		return domain.NewNotFoundError("beer")
	}
	return nil
}

func (m *mockBeerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.beers[id]; !ok {
		return domain.NewNotFoundError("beer")
	}
	delete(m.beers, id)
	return nil
}

func newBeerService(repo *mockBeerRepo) *usecase.BeerService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewBeerService(repo, log)
}

func TestBeerService_CreateIgnoresReadOnlyFields(t *testing.T) {
	repo := newMockBeerRepo()
	svc := newBeerService(repo)

	supplied := domain.Beer{
		ID:               uuid.New(),
		Version:          9,
		CreatedDate:      time.Date(2019, 5, 25, 10, 0, 0, 0, time.UTC),
		LastModifiedDate: time.Date(2019, 5, 25, 10, 0, 0, 0, time.UTC),
		BeerName:         "Nice Ale",
		BeerStyle:        domain.StyleAle,
		UPC:              123123123123,
		Price:            decimal.RequireFromString("9.99"),
		QuantityOnHand:   7,
	}

	id, err := svc.Create(context.Background(), &supplied)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotEqual(t, supplied.ID, id)

	require.Len(t, repo.saveArgs, 1)
	passed := repo.saveArgs[0]
	assert.Equal(t, uuid.Nil, passed.ID)
	assert.Equal(t, int64(0), passed.Version)
	assert.True(t, passed.CreatedDate.IsZero())
	assert.True(t, passed.LastModifiedDate.IsZero())
	assert.Equal(t, 0, passed.QuantityOnHand)
	assert.Equal(t, "Nice Ale", passed.BeerName)
	assert.True(t, supplied.Price.Equal(passed.Price))

	// The caller's value must not be mutated by the stripping.
	assert.Equal(t, int64(9), supplied.Version)
}

func TestBeerService_GetByID(t *testing.T) {
	repo := newMockBeerRepo()
	svc := newBeerService(repo)

	id, err := svc.Create(context.Background(), &domain.Beer{
		BeerName:  "Galaxy Cat",
		BeerStyle: domain.StylePaleAle,
		UPC:       321321321321,
		Price:     decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Galaxy Cat", got.BeerName)
	assert.Equal(t, domain.StylePaleAle, got.BeerStyle)
	assert.Equal(t, int64(1), got.Version)
	assert.False(t, got.CreatedDate.IsZero())
}

func TestBeerService_GetByIDNotFound(t *testing.T) {
	svc := newBeerService(newMockBeerRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBeerService_UpdateNotFound(t *testing.T) {
	svc := newBeerService(newMockBeerRepo())

	err := svc.Update(context.Background(), uuid.New(), &domain.Beer{
		BeerName:  "Nice Ale",
		BeerStyle: domain.StyleAle,
		UPC:       123123123123,
		Price:     decimal.RequireFromString("9.99"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBeerService_DeleteNotFound(t *testing.T) {
	svc := newBeerService(newMockBeerRepo())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
