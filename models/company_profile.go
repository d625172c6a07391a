package models

import "time"

type MobileEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile is the letterhead printed on consignment notes.
type CompanyProfile struct {
	ID          int64         `json:"id" db:"id"`
	CompanyName string        `json:"company_name" db:"company_name" validate:"required,max=255"`
	Address     string        `json:"address" db:"address" validate:"max=500"`
	City        string        `json:"city" db:"city" validate:"max=100"`
	State       string        `json:"state" db:"state" validate:"max=100"`
	Pincode     string        `json:"pincode" db:"pincode" validate:"max=10"`
	GSTIN       string        `json:"gstin" db:"gstin" validate:"max=15"`
	Footnote    string        `json:"footnote" db:"footnote"`
	Mobile      []MobileEntry `json:"mobile" db:"mobile" validate:"dive"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// Contacts formats the mobile numbers as "number(label), ...".
func (p *CompanyProfile) Contacts() string {
	if p == nil {
		return ""
	}
	out := ""
	for i, m := range p.Mobile {
		if i > 0 {
			out += ", "
		}
		out += m.Number
		if m.Label != "" {
			out += "(" + m.Label + ")"
		}
	}
	return out
}
