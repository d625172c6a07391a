package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the booking form date format (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// DefaultGST is stored when a party has no GST number.
const DefaultGST = "10987"

type TransportRecord struct {
	GRNo            string    `json:"gr_no" db:"gr_no"`
	Date            time.Time `json:"date" db:"date"`
	EwayBillNo      string    `json:"eway_bill_no" db:"eway_bill_no"`
	FromLocation    string    `json:"from_location" db:"from_location"`
	ConsignorCode   string    `json:"consignor_code" db:"consignor_code"`
	ConsignorGST    string    `json:"consignor_gst" db:"consignor_gst"`
	ConsignorName   string    `json:"consignor_name" db:"consignor_name"`
	ToLocation      string    `json:"to_location" db:"to_location"`
	ConsigneeCode   string    `json:"consignee_code" db:"consignee_code"`
	ConsigneeGST    string    `json:"consignee_gst" db:"consignee_gst"`
	ConsigneeName   string    `json:"consignee_name" db:"consignee_name"`
	ArticleColumns
	Remarks         string          `json:"remarks" db:"remarks"`
	GoodsType       string          `json:"goods_type" db:"goods_type"`
	ValueDeclared   string          `json:"value_declared" db:"value_declared"`
	GSTWillBePaidBy string          `json:"gst_will_be_paid_by" db:"gst_will_be_paid_by"`
	PaymentType     string          `json:"payment_type" db:"payment_type"`
	ToPay           decimal.Decimal `json:"to_pay" db:"to_pay"`
	Paid            decimal.Decimal `json:"paid" db:"paid"`
	MotorFreight    decimal.Decimal `json:"motor_freight" db:"motor_freight"`
	Hammali         decimal.Decimal `json:"hammali" db:"hammali"`
	OtherCharges    decimal.Decimal `json:"other_charges" db:"other_charges"`
	PdfPath         *string         `json:"pdf_path,omitempty" db:"pdf_path"`
	PdfCreatedAt    *time.Time      `json:"pdf_created_at,omitempty" db:"pdf_created_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`

	// Decoded from ArticleColumns for responses.
	Articles Articles `json:"articles"`
}

// TransportRecordRequest is the booking form payload. Articles may come as
// a list or, from older clients, as pipe-joined columns with articleLength.
type TransportRecordRequest struct {
	Date            string `json:"date" validate:"required"`
	EwayBillNo      string `json:"ewayBillNo" validate:"max=100"`
	FromLocation    string `json:"fromLocation" validate:"required,max=255"`
	ConsignorCode   string `json:"consignorCode" validate:"max=50"`
	ConsignorGst    string `json:"consignorGst" validate:"max=15"`
	Consignor       string `json:"consignor" validate:"required,max=255"`
	ToLocation      string `json:"toLocation" validate:"required,max=255"`
	ConsigneeCode   string `json:"consigneeCode" validate:"max=50"`
	ConsigneeGst    string `json:"consigneeGst" validate:"max=15"`
	Consignee       string `json:"consignee" validate:"required,max=255"`
	Remarks         string `json:"remarks"`
	GoodsType       string `json:"goodsType" validate:"max=100"`
	ValueDeclared   string `json:"valueDeclared" validate:"max=100"`
	GstWillBePaidBy string `json:"gstWillBePaidBy" validate:"max=100"`
	PaymentType     string `json:"paymentType" validate:"required"`
	MotorFreight    Charge `json:"motorFreight"`
	Hammali         Charge `json:"hammali"`
	OtherCharges    Charge `json:"otherCharges"`

	Articles Articles `json:"articles" validate:"omitempty,max=100,dive"`

	ArticleNo        string `json:"articleNo"`
	ArticleLength    int    `json:"articleLength" validate:"gte=0,max=100"`
	SaidToContain    string `json:"saidToContain"`
	TaxFree          string `json:"taxFree"`
	WeightChargeable string `json:"weightChargeable"`
	ActualWeight     string `json:"actualWeight"`
	HSN              string `json:"hsn"`
	Amount           string `json:"amount"`
}

// LegacyColumns returns the pipe-joined article fields of the request.
func (r TransportRecordRequest) LegacyColumns() ArticleColumns {
	return ArticleColumns{
		ArticleNo:        r.ArticleNo,
		ArticleLength:    r.ArticleLength,
		SaidToContain:    r.SaidToContain,
		TaxFree:          r.TaxFree,
		WeightChargeable: r.WeightChargeable,
		ActualWeight:     r.ActualWeight,
		HSN:              r.HSN,
		Amount:           r.Amount,
	}
}

// Invoice is the payment-side view of a transport record.
type Invoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceType   string          `json:"invoiceType"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount"`
	Consignor     string          `json:"consignor"`
	Consignee     string          `json:"consignee"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}
