// Package dto contains the transfer shapes exposed by the HTTP API.
//
// Transfer shapes are kept separate from domain entities so the wire
// contract (JSON field names, textual dates, validation rules) can evolve
// without touching the persistence model. Validation rules live in the
// `binding` tags and are the single source of truth for both request
// validation and the generated constraint documentation.
package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"beerfactory/src/app/docs"
	"beerfactory/src/core/domain"
)

// BeerDto is the API-facing representation of a Beer.
//
// id, version and the two date fields are read-only from the client's
// perspective: they carry no binding rules and are ignored on create.
// Dates travel as RFC 3339 text. None of the fields uses omitempty, so a
// serialized BeerDto always contains all nine keys.
type BeerDto struct {
	ID               *uuid.UUID       `json:"id"`
	Version          *int64           `json:"version"`
	CreatedDate      string           `json:"createdDate"`
	LastModifiedDate string           `json:"lastModifiedDate"`
	BeerName         string           `json:"beerName" binding:"required,max=255"`
	BeerStyle        string           `json:"beerStyle" binding:"required,beerstyle"`
	UPC              int64            `json:"upc" binding:"required,gt=0"`
	Price            *decimal.Decimal `json:"price" binding:"required"`
	QuantityOnHand   int              `json:"quantityOnHand" binding:"omitempty,gte=0"`
}

// RegisterValidations installs the custom rules used by the binding tags
// above into gin's validator engine. Call once during startup (and in
// tests that bind BeerDto payloads).
func RegisterValidations() error {
	docs.RegisterConstraintDescription("beerstyle", "must be a valid beer style")
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("beerstyle", validBeerStyle)
}

func validBeerStyle(fl validator.FieldLevel) bool {
	_, err := domain.ParseBeerStyle(fl.Field().String())
	return err == nil
}
