package screening

import (
	"BloodBank-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScreeningRepository interface {
		CreateHealthCheck(ctx context.Context, check *entities.HealthCheck) error
		GetLatestHealthCheck(ctx context.Context, userID string) (*entities.HealthCheck, error)
		GetDonationHistory(ctx context.Context, userID string) ([]*entities.Donation, error)
	}

	screeningRepository struct {
		db *gorm.DB
	}
)

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) CreateHealthCheck(ctx context.Context, check *entities.HealthCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *screeningRepository) GetLatestHealthCheck(ctx context.Context, userID string) (*entities.HealthCheck, error) {
	var check entities.HealthCheck
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *screeningRepository) GetDonationHistory(ctx context.Context, userID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("donation_date DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
