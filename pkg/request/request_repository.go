package request

import (
	"BloodBank-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.BloodRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.BloodRequest, error)
		GetOpenRequests(ctx context.Context) ([]*entities.BloodRequest, error)
		UpdateRequestStatus(ctx context.Context, id string, status string) error
		GetHealthRecordByUserID(ctx context.Context, userID string) (*entities.HealthRecord, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.BloodRequest, error) {
	var request entities.BloodRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetOpenRequests(ctx context.Context) ([]*entities.BloodRequest, error) {
	var requests []*entities.BloodRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", "Open").
		Order("needed_by ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.BloodRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *requestRepository) GetHealthRecordByUserID(ctx context.Context, userID string) (*entities.HealthRecord, error) {
	var record entities.HealthRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
