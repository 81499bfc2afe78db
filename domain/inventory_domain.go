package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSplitDonation = "donation separated into inventory units successfully"
	MessageSuccessGetInventory  = "inventory retrieved successfully"
	MessageSuccessUpdateUnit    = "inventory unit updated successfully"
	MessageSuccessExpireSweep   = "expired units swept successfully"

	MessageFailedSplitDonation = "failed to separate donation"
	MessageFailedGetInventory  = "failed to retrieve inventory"
	MessageFailedUpdateUnit    = "failed to update inventory unit"
	MessageFailedExpireSweep   = "failed to sweep expired units"

	ErrInventoryUnitNotFound = errors.New("inventory unit not found")
	ErrUnknownComponent      = errors.New("unknown blood component")
)

type (
	ComponentDeclaration struct {
		Component  string `json:"component" validate:"required"`
		QuantityCc int    `json:"quantity_cc" validate:"required"`
	}

	SplitDonationRequest struct {
		DonationID    string                 `json:"donation_id" validate:"required,uuid"`
		TotalVolumeCc int                    `json:"total_volume_cc" validate:"required,min=1"`
		Components    []ComponentDeclaration `json:"components" validate:"required,min=1,dive"`
	}

	// ApproveUnitRequest moves a PendingApproval unit to Available.
	// Component may re-declare the unit's type; the quantity is then reduced
	// by the component's yield ratio against the original undivided volume.
	ApproveUnitRequest struct {
		UnitID    string `json:"unit_id" validate:"required,uuid"`
		Component string `json:"component" validate:"omitempty"`
	}

	ReserveUnitRequest struct {
		UnitID    string `json:"unit_id" validate:"required,uuid"`
		RequestID string `json:"request_id" validate:"required,uuid"`
	}

	InventoryUnit struct {
		ID                 string    `json:"id"`
		DonationID         string    `json:"donation_id"`
		BloodType          string    `json:"blood_type"`
		Component          string    `json:"component"`
		QuantityCc         int       `json:"quantity_cc"`
		OriginalQuantityCc int       `json:"original_quantity_cc"`
		Status             string    `json:"status"`
		ExpirationDate     time.Time `json:"expiration_date"`
		ReservedForID      string    `json:"reserved_for_id,omitempty"`
		CreatedAt          time.Time `json:"created_at"`
		UpdatedAt          time.Time `json:"updated_at"`
	}

	ExpireSweepResponse struct {
		ExpiredUnits int `json:"expired_units"`
	}
)
