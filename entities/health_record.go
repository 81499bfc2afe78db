package entities

import (
	"github.com/google/uuid"
)

type HealthRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	BloodType string    `json:"blood_type"` // A+, A-, B+, B-, AB+, AB-, O+, O-

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type HealthCheck struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`

	WeightKg    float64 `json:"weight_kg"`
	Systolic    float64 `json:"systolic"`
	Diastolic   float64 `json:"diastolic"`
	Pulse       float64 `json:"pulse"`
	Temperature float64 `json:"temperature"`
	Hemoglobin  float64 `json:"hemoglobin"`

	IsCurrentlySick       bool `json:"is_currently_sick"`
	HasChronicConditions  bool `json:"has_chronic_conditions"`
	HasInfectiousDiseases bool `json:"has_infectious_diseases"`
	HasRecentProcedures   bool `json:"has_recent_procedures"`
	IsOnMedication        bool `json:"is_on_medication"`
	IsFeelingHealthy      bool `json:"is_feeling_healthy"`
	HasUnprotectedSex     bool `json:"has_unprotected_sex"`
	HasUsedDrugs          bool `json:"has_used_drugs"`
	HasBeenInjected       bool `json:"has_been_injected"`
	IsPregnant            bool `json:"is_pregnant"`
	IsBreastfeeding       bool `json:"is_breastfeeding"`

	LabReportURL string `json:"lab_report_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
