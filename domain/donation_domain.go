package domain

import (
	"errors"
	"time"
)

const (
	DonationStatusPending   = "Pending"
	DonationStatusApproved  = "Approved"
	DonationStatusCompleted = "Completed"
	DonationStatusRejected  = "Rejected"
	DonationStatusCancelled = "Cancelled"
)

var (
	MessageSuccessCreateDonation = "donation registered successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessUpdateDonation = "donation updated successfully"

	MessageFailedCreateDonation = "failed to register donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedUpdateDonation = "failed to update donation"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidDonationStatus      = errors.New("invalid donation status")
	ErrDonorNotEligible           = errors.New("donor is not eligible to donate")
	ErrDonationNotCompleted       = errors.New("donation is not completed yet")
)

type (
	CreateDonationRequest struct {
		Component    string `json:"component" validate:"required,oneof='Whole Blood' Plasma Platelets 'Red Cells' 'White Cells'"`
		VolumeCc     int    `json:"volume_cc" validate:"required,min=1"`
		DonationDate string `json:"donation_date" validate:"required"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	Donation struct {
		ID           string     `json:"id"`
		UserID       string     `json:"user_id"`
		Component    string     `json:"component"`
		VolumeCc     int        `json:"volume_cc"`
		DonationDate time.Time  `json:"donation_date"`
		Status       string     `json:"status"`
		Notes        string     `json:"notes,omitempty"`
		CompletedAt  *time.Time `json:"completed_at,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
		UpdatedAt    time.Time  `json:"updated_at"`
	}

	UpdateDonationStatusRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		Status     string `json:"status" validate:"required,oneof=Pending Approved Completed Rejected Cancelled"`
	}

	DonationStatistics struct {
		TotalDonations     int `json:"total_donations"`
		CompletedDonations int `json:"completed_donations"`
		PendingDonations   int `json:"pending_donations"`
		TotalVolumeCc      int `json:"total_volume_cc"`
	}
)
