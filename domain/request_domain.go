package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusOpen      = "Open"
	RequestStatusFulfilled = "Fulfilled"
	RequestStatusClosed    = "Closed"
)

var (
	MessageSuccessCreateRequest = "blood request created successfully"
	MessageSuccessGetRequests   = "blood requests retrieved successfully"
	MessageSuccessCloseRequest  = "blood request closed successfully"
	MessageSuccessGetMatches    = "matching blood requests retrieved successfully"

	MessageFailedCreateRequest = "failed to create blood request"
	MessageFailedGetRequests   = "failed to retrieve blood requests"
	MessageFailedCloseRequest  = "failed to close blood request"
	MessageFailedGetMatches    = "failed to retrieve matching blood requests"

	ErrBloodRequestNotFound = errors.New("blood request not found")
	ErrBloodRequestClosed   = errors.New("blood request already closed")
)

type (
	CreateBloodRequestRequest struct {
		PatientName string `json:"patient_name" validate:"required"`
		BloodType   string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
		QuantityCc  int    `json:"quantity_cc" validate:"required,min=1"`
		Urgency     string `json:"urgency" validate:"required,oneof=Normal Urgent Critical"`
		NeededBy    string `json:"needed_by" validate:"required"`
	}

	BloodRequest struct {
		ID          string    `json:"id"`
		RequesterID string    `json:"requester_id"`
		PatientName string    `json:"patient_name"`
		BloodType   string    `json:"blood_type"`
		QuantityCc  int       `json:"quantity_cc"`
		Urgency     string    `json:"urgency"`
		Status      string    `json:"status"`
		NeededBy    time.Time `json:"needed_by"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
