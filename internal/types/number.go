package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a decimal value that decodes leniently from JSON.
//
// JSON numbers and numeric strings are accepted. Strings may contain
// thousands separators, spaces and currency symbols. Everything that
// cannot be read as a number, including null, decodes to zero.
type Number decimal.Decimal

// NewNumber returns a Number for a float value.
func NewNumber(f float64) Number {
	return Number(decimal.NewFromFloat(f))
}

// Decimal returns the value as decimal.Decimal.
func (n Number) Decimal() decimal.Decimal {
	return decimal.Decimal(n)
}

// Int returns the integer part of the value.
func (n Number) Int() int {
	return int(decimal.Decimal(n).IntPart())
}

// MarshalJSON implements the json.Marshaler interface.
func (n Number) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(n).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. It never fails.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(ParseAmount(string(data)))
	return nil
}

// ParseAmount reads a user formatted amount like "1 250,50 €", "1,250.50" or
// "-20". Unparseable input yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
	if s == "" || s == "null" {
		return decimal.Zero
	}

	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}

	neg := strings.HasPrefix(s, "-")

	// Keep digits and separators only.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := normalizeSeparators(b.String())
	if clean == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}

	if neg {
		return d.Neg()
	}
	return d
}

// normalizeSeparators turns the last separator into the decimal point when it is
// followed by at most two digits and drops every other separator.
func normalizeSeparators(s string) string {
	last := strings.LastIndexAny(s, ".,")
	if last == -1 {
		return s
	}

	decimals := ""
	integer := s
	if len(s)-last-1 <= 2 {
		integer = s[:last]
		decimals = s[last+1:]
	}

	integer = strings.NewReplacer(".", "", ",", "").Replace(integer)
	if decimals == "" {
		return integer
	}

	if integer == "" {
		integer = "0"
	}
	return integer + "." + decimals
}
