package inventory

import (
	"BloodBank-API/domain"
	"BloodBank-API/entities"
	"BloodBank-API/pkg/bloodtype"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		SplitDonation(ctx context.Context, req domain.SplitDonationRequest) ([]*domain.InventoryUnit, error)
		ApproveUnit(ctx context.Context, req domain.ApproveUnitRequest) (*domain.InventoryUnit, error)
		RejectUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error)
		ReserveUnit(ctx context.Context, req domain.ReserveUnitRequest) (*domain.InventoryUnit, error)
		ReleaseUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error)
		ConsumeUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error)
		ExpireOverdueUnits(ctx context.Context) (*domain.ExpireSweepResponse, error)
		GetInventory(ctx context.Context, status, bloodType string, page, limit int) ([]*domain.InventoryUnit, int64, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

// SplitDonation separates a completed donation into one inventory unit per
// declared component. The whole split is atomic: any invalid declaration or
// unresolved blood type rejects the request with zero units created.
func (s *inventoryService) SplitDonation(ctx context.Context, req domain.SplitDonationRequest) ([]*domain.InventoryUnit, error) {
	if len(req.Components) == 0 {
		return nil, domain.NewValidationError("components", "at least one component must be declared")
	}

	total := 0
	for i, c := range req.Components {
		if !KnownComponent(c.Component) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("components[%d].component", i),
				fmt.Sprintf("unknown component %q", c.Component),
			)
		}
		if c.QuantityCc <= 0 {
			return nil, domain.NewValidationError(
				fmt.Sprintf("components[%d].quantity_cc", i),
				"quantity must be greater than zero",
			)
		}
		total += c.QuantityCc
	}
	if total > req.TotalVolumeCc {
		return nil, domain.NewValidationError(
			"components",
			fmt.Sprintf("declared quantities sum to %d cc, exceeding the total volume of %d cc", total, req.TotalVolumeCc),
		)
	}

	donationUUID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donation, err := s.inventoryRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if donation.Status != domain.DonationStatusCompleted {
		return nil, domain.ErrDonationNotCompleted
	}

	// Units from earlier splits of the same donation count against its
	// volume, so a retried or concurrent split cannot double-stock.
	separated, err := s.inventoryRepository.SumSeparatedVolume(ctx, req.DonationID)
	if err != nil {
		return nil, err
	}
	if separated+int64(total) > int64(donation.VolumeCc) {
		return nil, domain.NewValidationError(
			"components",
			fmt.Sprintf("donation has %d of %d cc separated already; another %d cc would exceed it", separated, donation.VolumeCc, total),
		)
	}

	record, err := s.inventoryRepository.GetHealthRecordByUserID(ctx, donation.UserID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHealthRecordNotFound
		}
		return nil, err
	}
	donorType, ok := bloodtype.Parse(record.BloodType)
	if !ok {
		return nil, domain.ErrBloodTypeUnknown
	}

	now := time.Now()
	units := make([]*entities.BloodInventoryUnit, 0, len(req.Components))
	for _, c := range req.Components {
		shelfLife, _ := ShelfLifeFor(c.Component)
		units = append(units, &entities.BloodInventoryUnit{
			ID:                 uuid.New(),
			DonationID:         donationUUID,
			BloodType:          donorType.String(),
			Component:          c.Component,
			QuantityCc:         c.QuantityCc,
			OriginalQuantityCc: c.QuantityCc,
			Status:             string(StatusPendingApproval),
			ExpirationDate:     now.AddDate(0, 0, shelfLife),
		})
	}

	if err := s.inventoryRepository.CreateUnits(ctx, units); err != nil {
		return nil, err
	}

	result := make([]*domain.InventoryUnit, 0, len(units))
	for _, unit := range units {
		result = append(result, unitToDomain(unit))
	}
	return result, nil
}

// ApproveUnit moves a PendingApproval unit to Available. A non-empty
// component re-declares the unit; the new quantity is the yield ratio applied
// to the original undivided quantity, so repeated reclassification can never
// stack reductions.
func (s *inventoryService) ApproveUnit(ctx context.Context, req domain.ApproveUnitRequest) (*domain.InventoryUnit, error) {
	unit, err := s.getUnit(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Component != "" && req.Component != unit.Component {
		ratio, ok := YieldRatioFor(req.Component)
		if !ok {
			return nil, domain.ErrUnknownComponent
		}
		shelfLife, _ := ShelfLifeFor(req.Component)
		quantity := int(math.Round(float64(unit.OriginalQuantityCc) * ratio))
		if quantity <= 0 {
			return nil, domain.NewValidationError("component", "yield of the declared component rounds to zero volume")
		}
		updates["component"] = req.Component
		updates["quantity_cc"] = quantity
		updates["expiration_date"] = unit.CreatedAt.AddDate(0, 0, shelfLife)
	}

	return s.transition(ctx, unit, StatusAvailable, updates)
}

// RejectUnit expires a PendingApproval unit whose lab review failed.
func (s *inventoryService) RejectUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error) {
	unit, err := s.getUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, unit, StatusExpired, nil)
}

// ReserveUnit allocates an Available unit to a blood request. Reversible via
// ReleaseUnit.
func (s *inventoryService) ReserveUnit(ctx context.Context, req domain.ReserveUnitRequest) (*domain.InventoryUnit, error) {
	requestUUID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	unit, err := s.getUnit(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, unit, StatusReserved, map[string]interface{}{
		"reserved_for_id": requestUUID,
	})
}

func (s *inventoryService) ReleaseUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error) {
	unit, err := s.getUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, unit, StatusAvailable, map[string]interface{}{
		"reserved_for_id": nil,
	})
}

// ConsumeUnit marks an Available unit as transfused. Terminal.
func (s *inventoryService) ConsumeUnit(ctx context.Context, unitID string) (*domain.InventoryUnit, error) {
	unit, err := s.getUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, unit, StatusUsed, nil)
}

// ExpireOverdueUnits is the entry point the background sweep calls.
func (s *inventoryService) ExpireOverdueUnits(ctx context.Context) (*domain.ExpireSweepResponse, error) {
	expired, err := s.inventoryRepository.ExpireOverdueUnits(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &domain.ExpireSweepResponse{ExpiredUnits: int(expired)}, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, status, bloodType string, page, limit int) ([]*domain.InventoryUnit, int64, error) {
	units, count, err := s.inventoryRepository.ListUnits(ctx, status, bloodType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.InventoryUnit, 0, len(units))
	for _, unit := range units {
		result = append(result, unitToDomain(unit))
	}
	return result, count, nil
}

func (s *inventoryService) getUnit(ctx context.Context, unitID string) (*entities.BloodInventoryUnit, error) {
	if _, err := uuid.Parse(unitID); err != nil {
		return nil, domain.ErrParseUUID
	}
	unit, err := s.inventoryRepository.GetUnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInventoryUnitNotFound
		}
		return nil, err
	}
	return unit, nil
}

// transition performs a compare-and-swap status move. Legality is checked
// against the lifecycle table, then the repository update is conditioned on
// the status the unit was read with; losing that race surfaces as a state
// conflict carrying the winner's status.
func (s *inventoryService) transition(ctx context.Context, unit *entities.BloodInventoryUnit, to UnitStatus, updates map[string]interface{}) (*domain.InventoryUnit, error) {
	current := UnitStatus(unit.Status)
	if !CanTransition(current, to) {
		return nil, domain.NewStateConflictError(unit.ID.String(), unit.Status, string(to))
	}

	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = string(to)

	rows, err := s.inventoryRepository.UpdateUnitStatus(ctx, unit.ID.String(), current, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		latest, err := s.inventoryRepository.GetUnitByID(ctx, unit.ID.String())
		if err != nil {
			return nil, err
		}
		return nil, domain.NewStateConflictError(unit.ID.String(), latest.Status, string(to))
	}

	updated, err := s.inventoryRepository.GetUnitByID(ctx, unit.ID.String())
	if err != nil {
		return nil, err
	}
	return unitToDomain(updated), nil
}

func unitToDomain(unit *entities.BloodInventoryUnit) *domain.InventoryUnit {
	result := &domain.InventoryUnit{
		ID:                 unit.ID.String(),
		DonationID:         unit.DonationID.String(),
		BloodType:          unit.BloodType,
		Component:          unit.Component,
		QuantityCc:         unit.QuantityCc,
		OriginalQuantityCc: unit.OriginalQuantityCc,
		Status:             unit.Status,
		ExpirationDate:     unit.ExpirationDate,
		CreatedAt:          unit.CreatedAt,
		UpdatedAt:          unit.UpdatedAt,
	}
	if unit.ReservedForID != nil {
		result.ReservedForID = unit.ReservedForID.String()
	}
	return result
}
