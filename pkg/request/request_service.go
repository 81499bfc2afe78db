package request

import (
	"BloodBank-API/domain"
	"BloodBank-API/entities"
	"BloodBank-API/pkg/bloodtype"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateBloodRequestRequest, requesterID string) (*domain.BloodRequest, error)
		GetOpenRequests(ctx context.Context) ([]*domain.BloodRequest, error)
		CloseRequest(ctx context.Context, id string, status string) error
		GetMatchingRequests(ctx context.Context, donorID string) ([]*domain.BloodRequest, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateBloodRequestRequest, requesterID string) (*domain.BloodRequest, error) {
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, ok := bloodtype.Parse(req.BloodType); !ok {
		return nil, domain.NewValidationError("blood_type", "must be one of the 8 ABO/Rh types")
	}

	neededBy, err := time.Parse("2006-01-02", req.NeededBy)
	if err != nil {
		return nil, domain.NewValidationError("needed_by", "must be formatted as YYYY-MM-DD")
	}

	request := &entities.BloodRequest{
		ID:          uuid.New(),
		RequesterID: requesterUUID,
		PatientName: req.PatientName,
		BloodType:   req.BloodType,
		QuantityCc:  req.QuantityCc,
		Urgency:     req.Urgency,
		Status:      domain.RequestStatusOpen,
		NeededBy:    neededBy,
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return requestToDomain(request), nil
}

func (s *requestService) GetOpenRequests(ctx context.Context) ([]*domain.BloodRequest, error) {
	requests, err := s.requestRepository.GetOpenRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.BloodRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, requestToDomain(request))
	}
	return result, nil
}

func (s *requestService) CloseRequest(ctx context.Context, id string, status string) error {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBloodRequestNotFound
		}
		return err
	}
	if request.Status != domain.RequestStatusOpen {
		return domain.ErrBloodRequestClosed
	}
	if status != domain.RequestStatusFulfilled && status != domain.RequestStatusClosed {
		return domain.NewValidationError("status", "must be Fulfilled or Closed")
	}

	return s.requestRepository.UpdateRequestStatus(ctx, id, status)
}

// GetMatchingRequests filters open requests down to those the donor's blood
// type may legally supply. A donor without a recorded or parseable blood type
// gets an empty match set rather than an error.
func (s *requestService) GetMatchingRequests(ctx context.Context, donorID string) ([]*domain.BloodRequest, error) {
	record, err := s.requestRepository.GetHealthRecordByUserID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*domain.BloodRequest{}, nil
		}
		return nil, err
	}

	donorType, ok := bloodtype.Parse(record.BloodType)
	if !ok {
		return []*domain.BloodRequest{}, nil
	}

	requests, err := s.requestRepository.GetOpenRequests(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.BloodRequest, 0, len(requests))
	for _, request := range requests {
		if bloodtype.CanDonateTo(donorType.String(), request.BloodType) {
			matches = append(matches, requestToDomain(request))
		}
	}
	return matches, nil
}

func requestToDomain(request *entities.BloodRequest) *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:          request.ID.String(),
		RequesterID: request.RequesterID.String(),
		PatientName: request.PatientName,
		BloodType:   request.BloodType,
		QuantityCc:  request.QuantityCc,
		Urgency:     request.Urgency,
		Status:      request.Status,
		NeededBy:    request.NeededBy,
		CreatedAt:   request.CreatedAt,
	}
}
