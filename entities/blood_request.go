package entities

import (
	"github.com/google/uuid"
	"time"
)

type BloodRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	PatientName string    `json:"patient_name"`
	BloodType   string    `json:"blood_type"`
	QuantityCc  int       `json:"quantity_cc"`
	Urgency     string    `json:"urgency"` // Normal, Urgent, Critical
	Status      string    `json:"status"`  // Open, Fulfilled, Closed
	NeededBy    time.Time `json:"needed_by"`

	Requester *User `gorm:"foreignKey:RequesterID"`
	Timestamp
}
