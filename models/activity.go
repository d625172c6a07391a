package models

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Activity is one entry of the write audit trail.
type Activity struct {
	ID         string    `json:"id" bson:"_id"`
	Entity     string    `json:"entity" bson:"entity"`
	Identifier string    `json:"identifier" bson:"identifier"`
	Action     string    `json:"action" bson:"action"`
	At         time.Time `json:"at" bson:"at"`
}
