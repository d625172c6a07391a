package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GRList is the set of GR numbers carried by a challan or crossing
// statement. It decodes from a JSON array or from a pipe-joined string.
type GRList []string

func (l *GRList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*l = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(b, &joined); err != nil {
		return fmt.Errorf("builty_no must be a list or a '|' separated string")
	}
	*l = SplitPipe(joined)
	return nil
}

// Normalize trims and upper-cases every entry and drops blanks.
func (l GRList) Normalize() GRList {
	out := make(GRList, 0, len(l))
	for _, gr := range l {
		gr = strings.ToUpper(strings.TrimSpace(gr))
		if gr != "" {
			out = append(out, gr)
		}
	}
	return out
}

// Join gives the stored builty_no column.
func (l GRList) Join() string {
	return strings.Join(l, PipeSeparator)
}

type Challan struct {
	ChallanNo    string    `json:"challan_no" db:"challan_no"`
	Date         string    `json:"date" db:"date"`
	TruckNo      string    `json:"truck_no" db:"truck_no"`
	DriverNo     string    `json:"driver_no" db:"driver_no"`
	FromLocation string    `json:"from_location" db:"from_location"`
	Destination  string    `json:"destination" db:"destination"`
	BuiltyNo     GRList    `json:"builty_no" db:"builty_no"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ChallanRequest struct {
	Date        string `json:"date" validate:"required,max=255"`
	TruckNo     string `json:"truck_no" validate:"required,max=255"`
	DriverNo    string `json:"driver_no" validate:"required,max=255"`
	From        string `json:"from" validate:"required,max=255"`
	Destination string `json:"destination" validate:"required,max=255"`
	BuiltyNo    GRList `json:"builty_no" validate:"required,min=1"`
}

type CrossingStatement struct {
	CXNumber  string    `json:"cx_number" db:"cx_number"`
	Date      string    `json:"date" db:"date"`
	BuiltyNo  GRList    `json:"builty_no" db:"builty_no"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CrossingRequest struct {
	Date     string `json:"date" validate:"required,max=255"`
	BuiltyNo GRList `json:"builty_no" validate:"required,min=1"`
}
