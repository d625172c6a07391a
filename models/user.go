package models

import "time"

const (
	UserActive   = "Active"
	UserInactive = "Inactive"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Password     string    `json:"-" db:"password"`
	Type         string    `json:"type" db:"type"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateUserRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Password     string `json:"password" validate:"required,min=4,max=72"`
	Type         string `json:"type" validate:"required,oneof=Admin Employee"`
	MobileNumber string `json:"mobile_number" validate:"required,max=15"`
	Status       string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateUserRequest leaves nil fields unchanged.
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password     *string `json:"password" validate:"omitempty,min=4,max=72"`
	Type         *string `json:"type" validate:"omitempty,oneof=Admin Employee"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,min=1,max=15"`
	Status       *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}
