package models

import "time"

type Transporter struct {
	OwnerName         string     `json:"owner_name" db:"owner_name"`
	VehicleNumber     string     `json:"vehicle_number" db:"vehicle_number"`
	Type              string     `json:"type" db:"type"`
	IDType            string     `json:"id_type" db:"id_type"`
	IDNumber          string     `json:"id_number" db:"id_number"`
	AadhaarNumber     *string    `json:"aadhaar_number" db:"aadhaar_number"`
	ContactNumber     string     `json:"contact_number" db:"contact_number"`
	DeclarationUpload *string    `json:"declaration_upload" db:"declaration_upload"`
	Comments          *string    `json:"comments" db:"comments"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// TransporterRequest is used for create and update; on update the vehicle
// number comes from the path and the body value is ignored.
type TransporterRequest struct {
	OwnerName         string `json:"ownerName" validate:"required,max=100"`
	VehicleNumber     string `json:"vehicleNumber" validate:"max=20"`
	Type              string `json:"type" validate:"required,oneof=Individual Company"`
	IDType            string `json:"idType" validate:"required,oneof='GST number' 'PAN number'"`
	IDNumber          string `json:"idNumber" validate:"required,max=20"`
	AadhaarNumber     string `json:"aadhaarNumber" validate:"omitempty,len=12,numeric"`
	ContactNumber     string `json:"contactNumber" validate:"required,max=15"`
	DeclarationUpload string `json:"declarationUpload" validate:"max=1024"`
	Comments          string `json:"comments"`
}
