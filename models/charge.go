package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"mptransport/freight"
)

// Charge is a surcharge as sent by the booking form: a JSON number, a
// numeric string, or blank. Anything unreadable counts as zero.
type Charge struct {
	decimal.Decimal
}

func NewCharge(d decimal.Decimal) Charge {
	return Charge{Decimal: d}
}

func (c *Charge) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		c.Decimal = decimal.Zero
		return nil
	}
	c.Decimal = freight.ParseAmount(strings.Trim(s, `"`))
	return nil
}
