package entities

import (
	"github.com/google/uuid"
	"time"
)

type BloodInventoryUnit struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `json:"donation_id"`
	BloodType  string    `json:"blood_type"`
	Component  string    `json:"component"`
	// QuantityCc is the current usable volume. OriginalQuantityCc is the
	// volume the unit was created with at separation time; component
	// reclassification yields are always computed against it.
	QuantityCc         int        `json:"quantity_cc"`
	OriginalQuantityCc int        `json:"original_quantity_cc"`
	Status             string     `json:"status"` // PendingApproval, Available, Reserved, Used, Expired
	ExpirationDate     time.Time  `json:"expiration_date"`
	ReservedForID      *uuid.UUID `json:"reserved_for_id,omitempty"`

	Donation    *Donation     `gorm:"foreignKey:DonationID"`
	ReservedFor *BloodRequest `gorm:"foreignKey:ReservedForID"`
	Timestamp
}
