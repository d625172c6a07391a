package models

import "github.com/shopspring/decimal"

type TransportRecordPDFData struct {
	Company    *CompanyProfile
	Record     *TransportRecord
	Articles   Articles
	Contacts   string
	Date       string
	Total      decimal.Decimal
	TotalWords string
	CopyTitle  string
}
