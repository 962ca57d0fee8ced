package mapper

import (
	"beerfactory/src/app/http/dto"
	"beerfactory/src/core/domain"
)

// BeerMapper converts Beer entities to BeerDtos and back.
//
// Null policy for both directions: a nil input produces a nil output and
// no error. This follows common mapping-library convention and keeps the
// mapper total over its input space.
type BeerMapper interface {
	ToDto(beer *domain.Beer) *dto.BeerDto
	ToDomain(d *dto.BeerDto) (*domain.Beer, error)
}

// beerMapper is the production BeerMapper. Date fields pass through the
// injected DateMapper; every other field is copied verbatim.
type beerMapper struct {
	dates DateMapper
}

// NewBeerMapper builds a BeerMapper using the given date delegate.
func NewBeerMapper(dates DateMapper) BeerMapper {
	return &beerMapper{dates: dates}
}

func (m *beerMapper) ToDto(beer *domain.Beer) *dto.BeerDto {
	if beer == nil {
		return nil
	}

	id := beer.ID
	version := beer.Version
	price := beer.Price

	return &dto.BeerDto{
		ID:               &id,
		Version:          &version,
		CreatedDate:      m.dates.ToTextual(beer.CreatedDate),
		LastModifiedDate: m.dates.ToTextual(beer.LastModifiedDate),
		BeerName:         beer.BeerName,
		BeerStyle:        string(beer.BeerStyle),
		UPC:              beer.UPC,
		Price:            &price,
		QuantityOnHand:   beer.QuantityOnHand,
	}
}

func (m *beerMapper) ToDomain(d *dto.BeerDto) (*domain.Beer, error) {
	if d == nil {
		return nil, nil
	}

	created, err := m.dates.ToTimestamp(d.CreatedDate)
	if err != nil {
		return nil, err
	}
	modified, err := m.dates.ToTimestamp(d.LastModifiedDate)
	if err != nil {
		return nil, err
	}

	beer := domain.Beer{
		CreatedDate:      created,
		LastModifiedDate: modified,
		BeerName:         d.BeerName,
		UPC:              d.UPC,
		QuantityOnHand:   d.QuantityOnHand,
	}

	if d.ID != nil {
		beer.ID = *d.ID
	}
	if d.Version != nil {
		beer.Version = *d.Version
	}
	if d.Price != nil {
		beer.Price = *d.Price
	}

	// An empty style maps to the zero value; anything else must parse.
	if d.BeerStyle != "" {
		style, err := domain.ParseBeerStyle(d.BeerStyle)
		if err != nil {
			return nil, err
		}
		beer.BeerStyle = style
	}

	return &beer, nil
}
