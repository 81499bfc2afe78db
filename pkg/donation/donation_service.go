package donation

import (
	"BloodBank-API/domain"
	"BloodBank-API/entities"
	"BloodBank-API/internal/utils/mailing"
	"BloodBank-API/pkg/screening"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.Donation, int64, error)
		GetDonationByID(ctx context.Context, id string, userID string) (*domain.Donation, error)
		UpdateDonationStatus(ctx context.Context, req domain.UpdateDonationStatusRequest, actorID, actorRole string) error
		GetDonationStatistics(ctx context.Context, userID string) (*domain.DonationStatistics, error)
	}

	donationService struct {
		donationRepository DonationRepository
		screeningService   screening.ScreeningService
	}
)

func NewDonationService(donationRepository DonationRepository, screeningService screening.ScreeningService) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		screeningService:   screeningService,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error) {
	// Screening and recency are both required before a donation request is
	// accepted.
	canDonate, err := s.screeningService.CanDonate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !canDonate.CanDonate {
		return nil, domain.ErrDonorNotEligible
	}

	donationDate, err := time.Parse("2006-01-02", req.DonationDate)
	if err != nil {
		return nil, domain.NewValidationError("donation_date", "must be formatted as YYYY-MM-DD")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donation := &entities.Donation{
		ID:           uuid.New(),
		UserID:       userUUID,
		Component:    req.Component,
		VolumeCc:     req.VolumeCc,
		DonationDate: donationDate,
		Status:       domain.DonationStatusPending,
		Notes:        req.Notes,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return donationToDomain(donation), nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetUserDonations(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, donationToDomain(donation))
	}
	return result, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	return donationToDomain(donation), nil
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, req domain.UpdateDonationStatusRequest, actorID, actorRole string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	// Donors may only cancel their own pending donation; every other status
	// change is a staff action.
	if actorRole == domain.RoleDonor {
		if donation.UserID.String() != actorID {
			return domain.ErrUnauthorizedDonationAccess
		}
		if req.Status != domain.DonationStatusCancelled || donation.Status != domain.DonationStatusPending {
			return domain.ErrInvalidDonationStatus
		}
	}

	var completedAt *time.Time
	if req.Status == domain.DonationStatusCompleted && donation.Status != domain.DonationStatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	if err := s.donationRepository.UpdateDonationStatus(ctx, req.DonationID, req.Status, completedAt); err != nil {
		return err
	}

	if completedAt != nil {
		s.sendCompletionMail(ctx, donation)
	}

	return nil
}

func (s *donationService) GetDonationStatistics(ctx context.Context, userID string) (*domain.DonationStatistics, error) {
	stats, err := s.donationRepository.GetDonationStatistics(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.DonationStatistics{
		TotalDonations:     int(stats["total_donations"].(int64)),
		CompletedDonations: int(stats["completed_donations"].(int64)),
		PendingDonations:   int(stats["pending_donations"].(int64)),
		TotalVolumeCc:      int(stats["total_volume_cc"].(int64)),
	}, nil
}

func (s *donationService) sendCompletionMail(ctx context.Context, donation *entities.Donation) {
	user, err := s.donationRepository.GetUserByID(ctx, donation.UserID.String())
	if err != nil {
		log.Printf("failed to load donor for completion mail: %v", err)
		return
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your %s donation of %d cc has been completed. Thank you for donating!</p>",
		user.Name, donation.Component, donation.VolumeCc,
	)
	if err := mailing.SendMail(user.Email, "Thank you for your donation", body); err != nil {
		log.Printf("failed to send completion mail: %v", err)
	}
}

func donationToDomain(donation *entities.Donation) *domain.Donation {
	return &domain.Donation{
		ID:           donation.ID.String(),
		UserID:       donation.UserID.String(),
		Component:    donation.Component,
		VolumeCc:     donation.VolumeCc,
		DonationDate: donation.DonationDate,
		Status:       donation.Status,
		Notes:        donation.Notes,
		CompletedAt:  donation.CompletedAt,
		CreatedAt:    donation.CreatedAt,
		UpdatedAt:    donation.UpdatedAt,
	}
}
