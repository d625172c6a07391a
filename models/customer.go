package models

import "time"

// GSTIDType marks a customer whose id number is a GSTIN.
const GSTIDType = "GST Number"

type Customer struct {
	CustomerCode  string     `json:"customer_code" db:"customer_code"`
	Name          string     `json:"name" db:"name"`
	Type          string     `json:"type" db:"type"`
	IDType        string     `json:"id_type" db:"id_type"`
	IDNumber      string     `json:"id_number" db:"id_number"`
	ContactNumber string     `json:"contact_number" db:"contact_number"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// GSTIN is the id number for GST-registered customers and "UIN" otherwise.
func (c Customer) GSTIN() string {
	if c.IDType == GSTIDType {
		return c.IDNumber
	}
	return "UIN"
}

type CustomerLookup struct {
	Customer
	GSTIN string `json:"gstin"`
}

type CustomerRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Type          string `json:"type" validate:"required,max=50"`
	IDType        string `json:"idType" validate:"required,max=50"`
	IDNumber      string `json:"idNumber" validate:"required,max=255"`
	ContactNumber string `json:"contactNumber" validate:"required,max=20"`
}
