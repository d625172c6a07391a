// Package freight computes consignment totals and decides which ledger
// bucket (to pay or paid) a total belongs to.
package freight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Separator splits per-article amounts in a stored amount column.
const Separator = "|"

type PaymentType string

const (
	ToPay PaymentType = "TO PAY"
	Paid  PaymentType = "PAID"
)

// Invoice types shown on payment screens.
const (
	InvoiceToPay = "To Pay"
	InvoicePaid  = "Paid"
)

// Payment status values written to the status table.
const (
	StatusPaid    = "Paid"
	StatusPartial = "Paid-D"
)

var (
	ErrUnknownPaymentType = errors.New("payment type must be TO PAY or PAID")
	ErrOvercollected      = errors.New("amount collected exceeds invoice amount")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

// ParsePaymentType accepts either spelling case-insensitively.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(strings.ToUpper(strings.Join(strings.Fields(s), " "))) {
	case ToPay:
		return ToPay, nil
	case Paid:
		return Paid, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrUnknownPaymentType, s)
}

// ParseAmount reads a single amount; blanks and non-numeric text count as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SumField adds up a pipe-delimited amount column.
func SumField(field string) decimal.Decimal {
	sum := decimal.Zero
	if strings.TrimSpace(field) == "" {
		return sum
	}
	for _, part := range strings.Split(field, Separator) {
		sum = sum.Add(ParseAmount(part))
	}
	return sum
}

// Total is the article amounts plus every surcharge.
func Total(amountField string, surcharges ...decimal.Decimal) decimal.Decimal {
	total := SumField(amountField)
	for _, s := range surcharges {
		total = total.Add(s)
	}
	return total
}

// Allocate places total in exactly one bucket; the other is zero.
func Allocate(total decimal.Decimal, pt PaymentType) (toPay, paid decimal.Decimal, err error) {
	switch pt {
	case ToPay:
		return total, decimal.Zero, nil
	case Paid:
		return decimal.Zero, total, nil
	}
	return decimal.Zero, decimal.Zero, fmt.Errorf("%w: got %q", ErrUnknownPaymentType, string(pt))
}

// Invoice derives the invoice type and amount from a record's buckets.
// A record with nothing in paid is billed as To Pay.
func Invoice(toPay, paid decimal.Decimal) (string, decimal.Decimal) {
	if paid.IsZero() {
		return InvoiceToPay, toPay
	}
	return InvoicePaid, paid
}

// PaymentStatus classifies a collection against the invoice amount.
func PaymentStatus(collected, invoiceAmount decimal.Decimal) (string, error) {
	if collected.IsNegative() {
		return "", ErrNegativeAmount
	}
	switch collected.Cmp(invoiceAmount) {
	case 0:
		return StatusPaid, nil
	case -1:
		return StatusPartial, nil
	}
	return "", fmt.Errorf("%w: collected %s, invoice %s", ErrOvercollected, collected.StringFixed(2), invoiceAmount.StringFixed(2))
}
