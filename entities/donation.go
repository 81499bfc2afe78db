package entities

import (
	"github.com/google/uuid"
	"time"
)

type Donation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Component    string     `json:"component"` // Whole Blood, Plasma, Platelets, Red Cells, White Cells
	VolumeCc     int        `json:"volume_cc"`
	DonationDate time.Time  `json:"donation_date"`
	Status       string     `json:"status"` // Pending, Approved, Completed, Rejected, Cancelled
	Notes        string     `json:"notes,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	User           *User                 `gorm:"foreignKey:UserID"`
	InventoryUnits []*BloodInventoryUnit `gorm:"foreignKey:DonationID"`
	Timestamp
}
