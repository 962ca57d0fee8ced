// Package mapper converts between the persistence-shaped Beer entity and
// its API-facing BeerDto representation. Conversions are pure: every call
// allocates a fresh value and no state is shared between invocations.
package mapper

import (
	"time"

	"beerfactory/src/core/domain"
)

// DateMapper converts timestamps to and from their client-facing textual
// form. It is injected into BeerMapper rather than owned by it.
type DateMapper interface {
	// ToTextual renders a timestamp as text.
	ToTextual(t time.Time) string

	// ToTimestamp parses text produced by ToTextual back into a
	// timestamp. Malformed text yields an ErrConversion-wrapped error.
	ToTimestamp(s string) (time.Time, error)
}

// OffsetDateMapper implements DateMapper using RFC 3339 with nanosecond
// precision, preserving the original UTC offset. The zero time maps to the
// empty string and back, so default-constructed entities round-trip.
type OffsetDateMapper struct{}

func (OffsetDateMapper) ToTextual(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func (OffsetDateMapper) ToTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, domain.NewConversionError("date", s)
	}
	return t, nil
}
