package inventory

import (
	"BloodBank-API/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetHealthRecordByUserID(ctx context.Context, userID string) (*entities.HealthRecord, error)

		CreateUnits(ctx context.Context, units []*entities.BloodInventoryUnit) error

		// SumSeparatedVolume reports the volume already carved out of a
		// donation, counting every unit at its original quantity.
		SumSeparatedVolume(ctx context.Context, donationID string) (int64, error)
		GetUnitByID(ctx context.Context, id string) (*entities.BloodInventoryUnit, error)
		ListUnits(ctx context.Context, status, bloodType string, page, limit int) ([]*entities.BloodInventoryUnit, int64, error)

		// UpdateUnitStatus is a conditional update keyed on the expected
		// current status. It returns the number of rows changed; zero means
		// another action already moved the unit.
		UpdateUnitStatus(ctx context.Context, id string, expected UnitStatus, updates map[string]interface{}) (int64, error)

		// ExpireOverdueUnits flips every Available or Reserved unit whose
		// expiration date has passed to Expired, returning the count.
		ExpireOverdueUnits(ctx context.Context, now time.Time) (int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *inventoryRepository) GetHealthRecordByUserID(ctx context.Context, userID string) (*entities.HealthRecord, error) {
	var record entities.HealthRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *inventoryRepository) CreateUnits(ctx context.Context, units []*entities.BloodInventoryUnit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, unit := range units {
			if err := tx.Create(unit).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *inventoryRepository) SumSeparatedVolume(ctx context.Context, donationID string) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.BloodInventoryUnit{}).
		Select("COALESCE(SUM(original_quantity_cc), 0) as total").
		Where("donation_id = ?", donationID).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *inventoryRepository) GetUnitByID(ctx context.Context, id string) (*entities.BloodInventoryUnit, error) {
	var unit entities.BloodInventoryUnit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *inventoryRepository) ListUnits(ctx context.Context, status, bloodType string, page, limit int) ([]*entities.BloodInventoryUnit, int64, error) {
	var units []*entities.BloodInventoryUnit
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.BloodInventoryUnit{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if bloodType != "" {
		query = query.Where("blood_type = ?", bloodType)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("expiration_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&units).Error; err != nil {
		return nil, 0, err
	}

	return units, count, nil
}

func (r *inventoryRepository) UpdateUnitStatus(ctx context.Context, id string, expected UnitStatus, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.BloodInventoryUnit{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *inventoryRepository) ExpireOverdueUnits(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.BloodInventoryUnit{}).
		Where("status IN ? AND expiration_date <= ?", []string{string(StatusAvailable), string(StatusReserved)}, now).
		Updates(map[string]interface{}{"status": string(StatusExpired)})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
