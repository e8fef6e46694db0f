// Package codec converts domain values to and from their wire representations.
// Prices travel as exact fixed-scale decimal strings and timestamps as RFC 3339
// UTC strings, so that a value survives an encode/decode round-trip unchanged.
package codec

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/casalista/backend/internal/pkg/apperr"
)

// priceScale is the fractional digit count of the price column, numeric(14,2).
const priceScale = 2

// Price is a monetary amount with an exact wire form. It rides database/sql
// through the embedded decimal and marshals to JSON as a quoted string at the
// column scale: shopspring's own String/MarshalJSON trim trailing zeros, which
// would turn "250000.00" into "250000" on the wire.
type Price struct {
	decimal.Decimal
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(priceScale) + `"`), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

// EncodePrice renders a price at the fixed column scale, so "1500.00" stays
// "1500.00" and a bare "42" canonicalizes to "42.00".
func EncodePrice(p Price) string {
	return p.StringFixed(priceScale)
}

// DecodePrice parses a decimal string into a price, rejecting non-numeric input.
func DecodePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, apperr.ErrValidationFailed.Msg("invalid price %q: not a decimal number", s)
	}
	return Price{Decimal: d}, nil
}

// EncodeTime renders a timestamp as an RFC 3339 UTC string.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DecodeTime parses an RFC 3339 string into a timestamp, rejecting malformed input.
func DecodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.ErrValidationFailed.Msg("invalid timestamp %q: not an RFC 3339 time", s)
	}
	return t, nil
}
