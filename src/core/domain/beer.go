package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeerStyle is the fixed set of recognized beer styles.
type BeerStyle string

const (
	StyleAle     BeerStyle = "ALE"
	StylePaleAle BeerStyle = "PALE_ALE"
	StyleIPA     BeerStyle = "IPA"
	StyleLager   BeerStyle = "LAGER"
	StyleStout   BeerStyle = "STOUT"
	StyleWheat   BeerStyle = "WHEAT"
	StylePilsner BeerStyle = "PILSNER"
	StylePorter  BeerStyle = "PORTER"
	StyleGose    BeerStyle = "GOSE"
	StyleSaison  BeerStyle = "SAISON"
)

// Styles lists every valid BeerStyle, in declaration order.
func Styles() []BeerStyle {
	return []BeerStyle{
		StyleAle, StylePaleAle, StyleIPA, StyleLager, StyleStout,
		StyleWheat, StylePilsner, StylePorter, StyleGose, StyleSaison,
	}
}

// ParseBeerStyle converts raw text into a BeerStyle.
// Unknown values return an ErrConversion-wrapped error.
func ParseBeerStyle(s string) (BeerStyle, error) {
	for _, style := range Styles() {
		if string(style) == s {
			return style, nil
		}
	}
	return "", NewConversionError("beerStyle", s)
}

// Beer is the persistence-shaped catalog entity. Instances are created by
// the repository layer and treated as immutable once read.
type Beer struct {
	ID               uuid.UUID
	Version          int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
	BeerName         string
	BeerStyle        BeerStyle
	UPC              int64
	Price            decimal.Decimal
	QuantityOnHand   int
}
