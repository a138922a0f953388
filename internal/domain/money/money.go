// Package money provides a single typed currency value used everywhere a
// price crosses the wire. The backend serializes prices inconsistently (JSON
// numbers and numeric strings both occur), so all parsing happens here, once,
// at the decode boundary. Internal arithmetic is exact decimal.
package money

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// Amount is a currency amount. The zero value is $0.00 and ready to use.
type Amount struct {
	d decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// FromDecimal wraps a decimal as an Amount.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromFloat converts a float to an Amount.
func FromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f)}
}

// Parse converts a decimal string to an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d: d}, nil
}

// Add returns a+b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// MulInt returns a multiplied by an integer quantity.
func (a Amount) MulInt(n int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(n)))}
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Float64 returns the nearest float64 representation.
func (a Amount) Float64() float64 {
	return a.d.InexactFloat64()
}

// String renders the amount with exactly two decimal places.
func (a Amount) String() string {
	return a.d.StringFixed(2)
}

// Display renders the amount as a dollar string, e.g. "$25.48".
func (a Amount) Display() string {
	return "$" + a.String()
}

// MarshalJSON encodes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null. Anything
// unparsable decodes as zero rather than failing the whole payload; the
// backend owns pricing and a malformed value must not take down rendering.
func (a *Amount) UnmarshalJSON(data []byte) error {
	dec := jx.DecodeBytes(data)
	switch dec.Next() {
	case jx.Number:
		num, err := dec.Num()
		if err != nil {
			a.d = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(string(num))
		if err != nil {
			a.d = decimal.Zero
			return nil
		}
		a.d = d
	case jx.String:
		s, err := dec.Str()
		if err != nil {
			a.d = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			a.d = decimal.Zero
			return nil
		}
		a.d = d
	default:
		// null, booleans, objects: coerce to zero.
		a.d = decimal.Zero
	}
	return nil
}
