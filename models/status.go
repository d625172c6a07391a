package models

// Unassigned is the challan/crossing status of a GR not on any document.
const Unassigned = "Book"

// Payment status values.
const (
	PaymentNA      = "NA"
	PaymentPending = "Pending"
)

type Status struct {
	GRNo           string `json:"gr_no" db:"gr_no"`
	ChallanStatus  string `json:"challan_status" db:"challan_status"`
	PaymentStatus  string `json:"payment_status" db:"payment_status"`
	CrossingStatus string `json:"crossing_status" db:"crossing_status"`
}

// NewStatus returns the status row of a freshly booked GR.
func NewStatus(grNo string) Status {
	return Status{
		GRNo:           grNo,
		ChallanStatus:  Unassigned,
		PaymentStatus:  PaymentPending,
		CrossingStatus: Unassigned,
	}
}

// StatusPatch changes only the fields that are set.
type StatusPatch struct {
	ChallanStatus  *string `json:"challan_status" validate:"omitempty,max=255"`
	PaymentStatus  *string `json:"payment_status" validate:"omitempty,max=255"`
	CrossingStatus *string `json:"crossing_status" validate:"omitempty,max=255"`
}

func (p StatusPatch) Empty() bool {
	return p.ChallanStatus == nil && p.PaymentStatus == nil && p.CrossingStatus == nil
}

// Apply returns s with the patch applied.
func (p StatusPatch) Apply(s Status) Status {
	if p.ChallanStatus != nil {
		s.ChallanStatus = *p.ChallanStatus
	}
	if p.PaymentStatus != nil {
		s.PaymentStatus = *p.PaymentStatus
	}
	if p.CrossingStatus != nil {
		s.CrossingStatus = *p.CrossingStatus
	}
	return s
}

type CreateStatusRequest struct {
	GRNo           string `json:"gr_no" validate:"required,max=50"`
	ChallanStatus  string `json:"challan_status" validate:"max=255"`
	PaymentStatus  string `json:"payment_status" validate:"max=255"`
	CrossingStatus string `json:"crossing_status" validate:"max=255"`
}
