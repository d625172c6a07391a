package freight

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		surcharges []decimal.Decimal
		want       string
	}{
		{"articles and surcharges", "10|20|5", []decimal.Decimal{d("2"), d("3"), d("0")}, "40"},
		{"empty", "", nil, "0"},
		{"non numeric entry", "abc|5", []decimal.Decimal{d("0"), d("0"), d("0")}, "5"},
		{"blank entries", "10||  |2.5", nil, "12.5"},
		{"decimals stay exact", "0.1|0.2", nil, "0.3"},
		{"surcharges only", "", []decimal.Decimal{d("150"), d("25.50")}, "175.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.field, tt.surcharges...)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParsePaymentType(t *testing.T) {
	pt, err := ParsePaymentType("to  pay")
	require.NoError(t, err)
	assert.Equal(t, ToPay, pt)

	pt, err = ParsePaymentType(" Paid ")
	require.NoError(t, err)
	assert.Equal(t, Paid, pt)

	_, err = ParsePaymentType("TBB")
	assert.ErrorIs(t, err, ErrUnknownPaymentType)
}

func TestAllocateKeepsOneBucket(t *testing.T) {
	total := d("40")

	toPay, paid, err := Allocate(total, ToPay)
	require.NoError(t, err)
	assert.True(t, toPay.Equal(total))
	assert.True(t, paid.IsZero())

	toPay, paid, err = Allocate(total, Paid)
	require.NoError(t, err)
	assert.True(t, toPay.IsZero())
	assert.True(t, paid.Equal(total))

	_, _, err = Allocate(total, PaymentType("CREDIT"))
	assert.ErrorIs(t, err, ErrUnknownPaymentType)
}

func TestInvoice(t *testing.T) {
	typ, amount := Invoice(d("120"), decimal.Zero)
	assert.Equal(t, InvoiceToPay, typ)
	assert.True(t, amount.Equal(d("120")))

	typ, amount = Invoice(decimal.Zero, d("75.25"))
	assert.Equal(t, InvoicePaid, typ)
	assert.True(t, amount.Equal(d("75.25")))
}

func TestPaymentStatus(t *testing.T) {
	s, err := PaymentStatus(d("100"), d("100.00"))
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, s)

	s, err = PaymentStatus(d("40"), d("100"))
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, s)

	_, err = PaymentStatus(d("101"), d("100"))
	assert.ErrorIs(t, err, ErrOvercollected)

	_, err = PaymentStatus(d("-1"), d("100"))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}
