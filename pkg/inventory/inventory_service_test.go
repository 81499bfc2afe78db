package inventory

import (
	"context"
	"testing"
	"time"

	"BloodBank-API/domain"
	"BloodBank-API/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// fakeInventoryRepository keeps everything in memory and mirrors the
// conditional-update contract of the real repository.
type fakeInventoryRepository struct {
	donations     map[string]*entities.Donation
	healthRecords map[string]*entities.HealthRecord
	units         map[string]*entities.BloodInventoryUnit

	// beforeUpdate runs between the service's read and its conditional
	// write, standing in for a racing staff action.
	beforeUpdate func()
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{
		donations:     map[string]*entities.Donation{},
		healthRecords: map[string]*entities.HealthRecord{},
		units:         map[string]*entities.BloodInventoryUnit{},
	}
}

func (f *fakeInventoryRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	donation, ok := f.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return donation, nil
}

func (f *fakeInventoryRepository) GetHealthRecordByUserID(_ context.Context, userID string) (*entities.HealthRecord, error) {
	record, ok := f.healthRecords[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeInventoryRepository) CreateUnits(_ context.Context, units []*entities.BloodInventoryUnit) error {
	for _, unit := range units {
		unit.CreatedAt = time.Now()
		f.units[unit.ID.String()] = unit
	}
	return nil
}

func (f *fakeInventoryRepository) SumSeparatedVolume(_ context.Context, donationID string) (int64, error) {
	var total int64
	for _, unit := range f.units {
		if unit.DonationID.String() == donationID {
			total += int64(unit.OriginalQuantityCc)
		}
	}
	return total, nil
}

func (f *fakeInventoryRepository) GetUnitByID(_ context.Context, id string) (*entities.BloodInventoryUnit, error) {
	unit, ok := f.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *unit
	return &copied, nil
}

func (f *fakeInventoryRepository) ListUnits(_ context.Context, status, bloodType string, page, limit int) ([]*entities.BloodInventoryUnit, int64, error) {
	var result []*entities.BloodInventoryUnit
	for _, unit := range f.units {
		if status != "" && unit.Status != status {
			continue
		}
		if bloodType != "" && unit.BloodType != bloodType {
			continue
		}
		copied := *unit
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (f *fakeInventoryRepository) UpdateUnitStatus(_ context.Context, id string, expected UnitStatus, updates map[string]interface{}) (int64, error) {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
		f.beforeUpdate = nil
	}
	unit, ok := f.units[id]
	if !ok || unit.Status != string(expected) {
		return 0, nil
	}
	for key, value := range updates {
		switch key {
		case "status":
			unit.Status = value.(string)
		case "component":
			unit.Component = value.(string)
		case "quantity_cc":
			unit.QuantityCc = value.(int)
		case "expiration_date":
			unit.ExpirationDate = value.(time.Time)
		case "reserved_for_id":
			if value == nil {
				unit.ReservedForID = nil
			} else {
				id := value.(uuid.UUID)
				unit.ReservedForID = &id
			}
		}
	}
	unit.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeInventoryRepository) ExpireOverdueUnits(_ context.Context, now time.Time) (int64, error) {
	var expired int64
	for _, unit := range f.units {
		if (unit.Status == string(StatusAvailable) || unit.Status == string(StatusReserved)) &&
			!unit.ExpirationDate.After(now) {
			unit.Status = string(StatusExpired)
			expired++
		}
	}
	return expired, nil
}

type InventoryServiceSuite struct {
	suite.Suite
	repo    *fakeInventoryRepository
	service InventoryService
	ctx     context.Context

	donorID    uuid.UUID
	donationID uuid.UUID
}

func TestInventoryServiceSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceSuite))
}

func (s *InventoryServiceSuite) SetupTest() {
	s.repo = newFakeInventoryRepository()
	s.service = NewInventoryService(s.repo)
	s.ctx = context.Background()

	s.donorID = uuid.New()
	s.donationID = uuid.New()
	s.repo.donations[s.donationID.String()] = &entities.Donation{
		ID:           s.donationID,
		UserID:       s.donorID,
		Component:    ComponentWholeBlood,
		VolumeCc:     450,
		DonationDate: time.Now().AddDate(0, 0, -1),
		Status:       domain.DonationStatusCompleted,
	}
	s.repo.healthRecords[s.donorID.String()] = &entities.HealthRecord{
		ID:        uuid.New(),
		UserID:    s.donorID,
		BloodType: "O-",
	}
}

func (s *InventoryServiceSuite) splitRequest(components ...domain.ComponentDeclaration) domain.SplitDonationRequest {
	return domain.SplitDonationRequest{
		DonationID:    s.donationID.String(),
		TotalVolumeCc: 450,
		Components:    components,
	}
}

func (s *InventoryServiceSuite) seedDonation(volumeCc int) uuid.UUID {
	id := uuid.New()
	s.repo.donations[id.String()] = &entities.Donation{
		ID:           id,
		UserID:       s.donorID,
		Component:    ComponentWholeBlood,
		VolumeCc:     volumeCc,
		DonationDate: time.Now().AddDate(0, 0, -1),
		Status:       domain.DonationStatusCompleted,
	}
	return id
}

// mustSplitOne seeds a fresh donation of exactly the requested quantity and
// separates it into a single unit.
func (s *InventoryServiceSuite) mustSplitOne(component string, quantity int) *domain.InventoryUnit {
	units, err := s.service.SplitDonation(s.ctx, domain.SplitDonationRequest{
		DonationID:    s.seedDonation(quantity).String(),
		TotalVolumeCc: quantity,
		Components:    []domain.ComponentDeclaration{{Component: component, QuantityCc: quantity}},
	})
	s.Require().NoError(err)
	s.Require().Len(units, 1)
	return units[0]
}

func (s *InventoryServiceSuite) TestSplitDonation() {
	s.Run("creates one pending unit per component with the donor blood type", func() {
		units, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentRedCells, QuantityCc: 200},
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 230},
		))
		s.Require().NoError(err)
		s.Require().Len(units, 2)
		for _, unit := range units {
			s.Equal("O-", unit.BloodType)
			s.Equal(string(StatusPendingApproval), unit.Status)
			s.Equal(unit.QuantityCc, unit.OriginalQuantityCc)
		}
	})

	s.Run("expiration follows the component shelf life", func() {
		s.SetupTest()
		units, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlatelets, QuantityCc: 20},
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 230},
		))
		s.Require().NoError(err)
		s.True(units[1].ExpirationDate.After(units[0].ExpirationDate))
	})

	s.Run("over-allocated quantities fail atomically", func() {
		before := len(s.repo.units)
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentRedCells, QuantityCc: 300},
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 160},
		))
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
		s.Len(s.repo.units, before, "no units may be created on a rejected split")
	})

	s.Run("repeated separation cannot exceed the donation volume", func() {
		s.SetupTest()
		req := s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentRedCells, QuantityCc: 200},
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 250},
		)
		_, err := s.service.SplitDonation(s.ctx, req)
		s.Require().NoError(err)

		// A staff retry after a timeout replays the same request.
		_, err = s.service.SplitDonation(s.ctx, req)
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)

		var total int
		for _, unit := range s.repo.units {
			total += unit.OriginalQuantityCc
		}
		s.LessOrEqual(total, 450, "units from one donation may never exceed its volume")
	})

	s.Run("a later split may take the remaining volume", func() {
		s.SetupTest()
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentRedCells, QuantityCc: 300},
		))
		s.Require().NoError(err)

		_, err = s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 150},
		))
		s.Require().NoError(err)
	})

	s.Run("empty component list is rejected", func() {
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest())
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
	})

	s.Run("non-positive quantity is rejected", func() {
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 0},
		))
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
	})

	s.Run("unknown component is rejected", func() {
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: "Serum", QuantityCc: 100},
		))
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
	})

	s.Run("missing health record fails the whole split", func() {
		s.SetupTest()
		delete(s.repo.healthRecords, s.donorID.String())
		before := len(s.repo.units)
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 100},
		))
		s.Require().ErrorIs(err, domain.ErrHealthRecordNotFound)
		s.Len(s.repo.units, before)
	})

	s.Run("unparseable blood type fails the whole split", func() {
		s.repo.healthRecords[s.donorID.String()] = &entities.HealthRecord{
			ID:        uuid.New(),
			UserID:    s.donorID,
			BloodType: "??",
		}
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 100},
		))
		s.Require().ErrorIs(err, domain.ErrBloodTypeUnknown)
	})

	s.Run("donation must be completed before separation", func() {
		s.repo.donations[s.donationID.String()].Status = domain.DonationStatusPending
		_, err := s.service.SplitDonation(s.ctx, s.splitRequest(
			domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 100},
		))
		s.Require().ErrorIs(err, domain.ErrDonationNotCompleted)
	})

	s.Run("unknown donation id fails", func() {
		req := s.splitRequest(domain.ComponentDeclaration{Component: ComponentPlasma, QuantityCc: 100})
		req.DonationID = uuid.NewString()
		_, err := s.service.SplitDonation(s.ctx, req)
		s.Require().ErrorIs(err, domain.ErrDonationNotFound)
	})
}

func (s *InventoryServiceSuite) TestUnitLifecycle() {
	s.Run("approve then reserve then release then consume", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 450)

		approved, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{UnitID: unit.ID})
		s.Require().NoError(err)
		s.Equal(string(StatusAvailable), approved.Status)

		requestID := uuid.NewString()
		reserved, err := s.service.ReserveUnit(s.ctx, domain.ReserveUnitRequest{UnitID: unit.ID, RequestID: requestID})
		s.Require().NoError(err)
		s.Equal(string(StatusReserved), reserved.Status)
		s.Equal(requestID, reserved.ReservedForID)

		released, err := s.service.ReleaseUnit(s.ctx, unit.ID)
		s.Require().NoError(err)
		s.Equal(string(StatusAvailable), released.Status)
		s.Empty(released.ReservedForID)

		used, err := s.service.ConsumeUnit(s.ctx, unit.ID)
		s.Require().NoError(err)
		s.Equal(string(StatusUsed), used.Status)
	})

	s.Run("rejecting a pending unit expires it", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 450)
		rejected, err := s.service.RejectUnit(s.ctx, unit.ID)
		s.Require().NoError(err)
		s.Equal(string(StatusExpired), rejected.Status)
	})

	s.Run("terminal units reject any further transition", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 450)
		_, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{UnitID: unit.ID})
		s.Require().NoError(err)
		_, err = s.service.ConsumeUnit(s.ctx, unit.ID)
		s.Require().NoError(err)

		_, err = s.service.ReserveUnit(s.ctx, domain.ReserveUnitRequest{UnitID: unit.ID, RequestID: uuid.NewString()})
		var conflict *domain.StateConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(string(StatusUsed), conflict.Current)
		s.Equal(string(StatusReserved), conflict.Attempted)
	})

	s.Run("consuming a pending unit is a state conflict, not ignored", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 450)
		_, err := s.service.ConsumeUnit(s.ctx, unit.ID)
		var conflict *domain.StateConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(string(StatusPendingApproval), conflict.Current)
	})

	s.Run("losing the conditional update surfaces the winner's status", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 450)
		// A racing staff action rejects the unit between our read and write.
		s.repo.beforeUpdate = func() {
			s.repo.units[unit.ID].Status = string(StatusExpired)
		}

		_, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{UnitID: unit.ID})
		var conflict *domain.StateConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Equal(string(StatusExpired), conflict.Current)
		s.Equal(string(StatusAvailable), conflict.Attempted)
	})

	s.Run("unknown unit id", func() {
		_, err := s.service.ConsumeUnit(s.ctx, uuid.NewString())
		s.Require().ErrorIs(err, domain.ErrInventoryUnitNotFound)
	})
}

func (s *InventoryServiceSuite) TestApproveWithReclassification() {
	s.Run("yield ratio applies against the original quantity", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 400)
		approved, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{
			UnitID:    unit.ID,
			Component: ComponentPlasma,
		})
		s.Require().NoError(err)
		s.Equal(ComponentPlasma, approved.Component)
		s.Equal(220, approved.QuantityCc) // 400 * 0.55
		s.Equal(400, approved.OriginalQuantityCc)
	})

	s.Run("reclassification updates the expiration to the new shelf life", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 400)
		approved, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{
			UnitID:    unit.ID,
			Component: ComponentPlatelets,
		})
		s.Require().NoError(err)
		s.True(approved.ExpirationDate.Before(unit.ExpirationDate))
	})

	s.Run("unknown target component is rejected", func() {
		unit := s.mustSplitOne(ComponentWholeBlood, 400)
		_, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{
			UnitID:    unit.ID,
			Component: "Serum",
		})
		s.Require().ErrorIs(err, domain.ErrUnknownComponent)
	})
}

func (s *InventoryServiceSuite) TestExpireOverdueUnits() {
	s.Run("only overdue available and reserved units are swept", func() {
		fresh := s.mustSplitOne(ComponentWholeBlood, 100)
		_, err := s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{UnitID: fresh.ID})
		s.Require().NoError(err)

		overdue := s.mustSplitOne(ComponentPlasma, 100)
		_, err = s.service.ApproveUnit(s.ctx, domain.ApproveUnitRequest{UnitID: overdue.ID})
		s.Require().NoError(err)
		s.repo.units[overdue.ID].ExpirationDate = time.Now().AddDate(0, 0, -1)

		pending := s.mustSplitOne(ComponentPlasma, 100)
		s.repo.units[pending.ID].ExpirationDate = time.Now().AddDate(0, 0, -1)

		resp, err := s.service.ExpireOverdueUnits(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, resp.ExpiredUnits)

		swept, err := s.repo.GetUnitByID(s.ctx, overdue.ID)
		require.NoError(s.T(), err)
		s.Equal(string(StatusExpired), swept.Status)

		untouched, err := s.repo.GetUnitByID(s.ctx, pending.ID)
		require.NoError(s.T(), err)
		s.Equal(string(StatusPendingApproval), untouched.Status, "lab review, not the sweep, expires pending units")
	})
}
