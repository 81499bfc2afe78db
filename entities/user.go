package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"` // donor, staff, admin

	HealthRecord *HealthRecord  `gorm:"foreignKey:UserID"`
	HealthChecks []*HealthCheck `gorm:"foreignKey:UserID"`
	Donations    []*Donation    `gorm:"foreignKey:UserID"`
	Timestamp
}
