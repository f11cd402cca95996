package bizimtransfer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scalar holds a JSON scalar (string, number or bool) as its literal text.
// The upstream API is not consistent about quoting ids and counts, so these
// fields are kept as text and rendered exactly as received. null decodes to "".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected a scalar, got %s", string(data[:1]))
	default:
		*s = Scalar(data)
	}
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Money is an upstream amount, quoted or not. null and "" decode as absent.
// Amounts that are not decimals ("45,50") keep their literal text in Raw.
type Money struct {
	decimal.NullDecimal
	Raw Scalar
}

// NewMoney parses a decimal literal, panicking on bad input; for fixtures and constants
func NewMoney(s string) Money {
	return Money{NullDecimal: decimal.NewNullDecimal(decimal.RequireFromString(s))}
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*m = Money{}
	if bytes.Equal(data, []byte(`""`)) || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := m.NullDecimal.UnmarshalJSON(data); err == nil {
		return nil
	}

	m.NullDecimal = decimal.NullDecimal{}
	return m.Raw.UnmarshalJSON(data)
}

// String renders the amount with the precision it was sent with ("45.50" stays "45.50")
func (m Money) String() string {
	if !m.Valid {
		return m.Raw.String()
	}
	if exp := m.Decimal.Exponent(); exp < 0 {
		return m.Decimal.StringFixed(-exp)
	}
	return m.Decimal.String()
}
