// Package repo contains the Postgres implementation of the repository
// ports.
package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"beerfactory/src/core/domain"
	"beerfactory/src/infra/db"
)

// PostgresBeerRepository implements ports.BeerRepository using pgx.
//
// Expected schema:
//
//	CREATE TABLE beers (
//	    id                 uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    version            bigint NOT NULL DEFAULT 1,
//	    created_date       timestamptz NOT NULL DEFAULT now(),
//	    last_modified_date timestamptz NOT NULL DEFAULT now(),
//	    beer_name          varchar(255) NOT NULL,
//	    beer_style         varchar(32) NOT NULL,
//	    upc                bigint NOT NULL,
//	    price              numeric(12,2) NOT NULL,
//	    quantity_on_hand   integer NOT NULL DEFAULT 0,
//	    UNIQUE (upc)
//	);
type PostgresBeerRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresBeerRepository constructs a repository backed by Postgres.
func NewPostgresBeerRepository(pg *db.Postgres, log *slog.Logger) *PostgresBeerRepository {
	return &PostgresBeerRepository{pool: pg.Pool, log: log}
}

func (r *PostgresBeerRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// beerColumns is the select list shared by the read queries. Price moves
// through text so it lands in decimal.Decimal without precision loss.
const beerColumns = `
	id, version, created_date, last_modified_date,
	beer_name, beer_style, upc, price::text, quantity_on_hand
`

func scanBeer(row pgx.Row) (*domain.Beer, error) {
	var (
		beer  domain.Beer
		style string
		price string
	)
	if err := row.Scan(
		&beer.ID, &beer.Version, &beer.CreatedDate, &beer.LastModifiedDate,
		&beer.BeerName, &style, &beer.UPC, &price, &beer.QuantityOnHand,
	); err != nil {
		return nil, err
	}

	parsedStyle, err := domain.ParseBeerStyle(style)
	if err != nil {
		return nil, err
	}
	beer.BeerStyle = parsedStyle

	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return nil, domain.NewConversionError("price", price)
	}
	beer.Price = parsedPrice

	return &beer, nil
}

func (r *PostgresBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	const q = `
		SELECT ` + beerColumns + `
		FROM beers
		WHERE id = $1
	`
	beer, err := scanBeer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("beer")
		}
		return nil, err
	}
	return beer, nil
}

func (r *PostgresBeerRepository) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	const q = `
		INSERT INTO beers (beer_name, beer_style, upc, price, quantity_on_hand)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING ` + beerColumns + `
	`
	saved, err := scanBeer(r.pool.QueryRow(ctx, q,
		beer.BeerName, string(beer.BeerStyle), beer.UPC, beer.Price.String(), beer.QuantityOnHand,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("a beer with this UPC already exists")
		}
		return nil, err
	}
	return saved, nil
}

func (r *PostgresBeerRepository) Update(ctx context.Context, id uuid.UUID, beer *domain.Beer) error {
	const q = `
		UPDATE beers
		SET beer_name = $2,
		    beer_style = $3,
		    upc = $4,
		    price = $5::numeric,
		    quantity_on_hand = $6,
		    version = version + 1,
		    last_modified_date = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, q,
		id, beer.BeerName, string(beer.BeerStyle), beer.UPC, beer.Price.String(), beer.QuantityOnHand,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("a beer with this UPC already exists")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("beer")
	}
	return nil
}

func (r *PostgresBeerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM beers WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("beer")
	}
	return nil
}
