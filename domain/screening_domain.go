package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSubmitHealthCheck = "health check submitted successfully"
	MessageSuccessGetEligibility    = "eligibility retrieved successfully"
	MessageSuccessGetSchedule       = "donation schedule retrieved successfully"

	MessageFailedSubmitHealthCheck = "failed to submit health check"
	MessageFailedGetEligibility    = "failed to retrieve eligibility"
	MessageFailedGetSchedule       = "failed to retrieve donation schedule"

	ErrHealthCheckNotFound  = errors.New("health check not found")
	ErrHealthRecordNotFound = errors.New("health record not found")
	ErrBloodTypeUnknown     = errors.New("blood type unknown or not recorded")
)

// Failed-criterion reasons reported by the eligibility evaluator. The UI
// shows them verbatim, so they read as user feedback.
const (
	ReasonLowWeight          = "weight below the 45 kg minimum"
	ReasonBloodPressure      = "blood pressure outside 90-160/60-100 mmHg"
	ReasonTemperature        = "body temperature outside 36.0-37.5 C"
	ReasonLowHemoglobin      = "hemoglobin below 12.5 g/dL"
	ReasonPulse              = "pulse outside 60-100 bpm"
	ReasonCurrentlySick      = "currently sick"
	ReasonInfectiousDiseases = "history of infectious diseases"
	ReasonRecentProcedures   = "recent surgery, transfusion, tattoo or piercing"
	ReasonNotFeelingHealthy  = "not feeling healthy today"
	ReasonUnprotectedSex     = "recent high-risk sexual activity"
	ReasonDrugUse            = "history of drug use"
	ReasonInjected           = "injections of unknown origin"
)

type (
	// HealthCheckAnswers is the flat screening questionnaire plus vitals.
	// Absent numeric vitals arrive as zero values and fail their range
	// checks instead of erroring.
	HealthCheckAnswers struct {
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
	}

	SubmitHealthCheckRequest struct {
		HealthCheckAnswers
		LabReport *multipart.FileHeader `json:"lab_report" form:"lab_report"`
	}

	// EligibilityDecision is derived, never stored; it is recomputed from
	// the latest answers on every read.
	EligibilityDecision struct {
		Eligible       bool     `json:"eligible"`
		FailedCriteria []string `json:"failed_criteria"`
	}

	// DonationHistoryRecord is one past donation attempt as the
	// waiting-period calculator sees it.
	DonationHistoryRecord struct {
		DonationDate time.Time `json:"donation_date"`
		Status       string    `json:"status"`
		Component    string    `json:"component"`
	}

	DonationSchedule struct {
		IsEligibleNow     bool       `json:"is_eligible_now"`
		NextDate          *time.Time `json:"next_date,omitempty"`
		WaitingPeriodDays int        `json:"waiting_period_days"`
	}

	CanDonateResponse struct {
		CanDonate       bool                `json:"can_donate"`
		HealthEligible  bool                `json:"health_eligible"`
		RecencyEligible bool                `json:"recency_eligible"`
		Decision        EligibilityDecision `json:"decision"`
		Schedule        DonationSchedule    `json:"schedule"`
	}

	HealthCheckResponse struct {
		ID           string              `json:"id"`
		Decision     EligibilityDecision `json:"decision"`
		LabReportURL string              `json:"lab_report_url,omitempty"`
		CreatedAt    time.Time           `json:"created_at"`
	}
)
