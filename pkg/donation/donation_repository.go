package donation

import (
	"BloodBank-API/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.Donation, int64, error)
		UpdateDonationStatus(ctx context.Context, id string, status string, completedAt *time.Time) error
		GetDonationStatistics(ctx context.Context, userID string) (map[string]interface{}, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("donation_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, status string, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}

	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *donationRepository) GetDonationStatistics(ctx context.Context, userID string) (map[string]interface{}, error) {
	var totalDonations, completedDonations, pendingDonations int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("user_id = ?", userID).
		Count(&totalDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("user_id = ? AND status = ?", userID, "Completed").
		Count(&completedDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("user_id = ? AND status = ?", userID, "Pending").
		Count(&pendingDonations).Error; err != nil {
		return nil, err
	}

	var result struct {
		TotalVolume int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("COALESCE(SUM(volume_cc), 0) as total_volume").
		Where("user_id = ? AND status = ?", userID, "Completed").
		Scan(&result).Error; err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"total_donations":     totalDonations,
		"completed_donations": completedDonations,
		"pending_donations":   pendingDonations,
		"total_volume_cc":     result.TotalVolume,
	}

	return stats, nil
}

func (r *donationRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
