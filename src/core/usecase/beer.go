package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beerfactory/src/core/domain"
	"beerfactory/src/core/ports"
)

// BeerService implements the beer CRUD flows on top of the repository
// port. It speaks domain values only; transfer-shape conversion happens at
// the HTTP boundary.
type BeerService struct {
	repo ports.BeerRepository
	log  *slog.Logger
}

func NewBeerService(repo ports.BeerRepository, log *slog.Logger) *BeerService {
	return &BeerService{repo: repo, log: log}
}

// GetByID fetches a beer.
func (s *BeerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new beer and returns the id assigned by the repository.
// The read-only fields (id, version, dates, quantity on hand) are ignored
// on input; the repository assigns them.
func (s *BeerService) Create(ctx context.Context, beer *domain.Beer) (uuid.UUID, error) {
	fresh := *beer
	fresh.ID = uuid.Nil
	fresh.Version = 0
	fresh.CreatedDate = time.Time{}
	fresh.LastModifiedDate = time.Time{}
	fresh.QuantityOnHand = 0

	saved, err := s.repo.Save(ctx, &fresh)
	if err != nil {
		return uuid.Nil, err
	}

	s.log.Info("beer created", "beer_id", saved.ID, "beer_name", saved.BeerName)
	return saved.ID, nil
}

// Update overwrites the beer with the given id.
func (s *BeerService) Update(ctx context.Context, id uuid.UUID, beer *domain.Beer) error {
	if err := s.repo.Update(ctx, id, beer); err != nil {
		return err
	}
	s.log.Info("beer updated", "beer_id", id)
	return nil
}

// Delete removes the beer with the given id.
func (s *BeerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("beer deleted", "beer_id", id)
	return nil
}
