package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	InvoiceNumber    string          `json:"invoice_number" db:"invoice_number"`
	InvoiceType      string          `json:"invoice_type" db:"invoice_type"`
	InvoiceAmount    decimal.Decimal `json:"invoice_amount" db:"invoice_amount"`
	AmountCollected  decimal.Decimal `json:"amount_collected" db:"amount_collected"`
	ModeOfCollection string          `json:"mode_of_collection" db:"mode_of_collection"`
	Comments         *string         `json:"comments" db:"comments"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentRequest records a collection against a GR. Invoice type and
// amount are taken from the GR, not from the request.
type PaymentRequest struct {
	InvoiceNumber    string  `json:"invoiceNumber" validate:"max=50"`
	AmountCollected  Charge  `json:"amountCollected"`
	ModeOfCollection string  `json:"modeOfCollection" validate:"required,max=20"`
	Comments         *string `json:"comments"`
}
