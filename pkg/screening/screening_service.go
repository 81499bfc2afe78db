package screening

import (
	"BloodBank-API/domain"
	"BloodBank-API/entities"
	"BloodBank-API/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScreeningService interface {
		SubmitHealthCheck(ctx context.Context, req domain.SubmitHealthCheckRequest, userID string) (*domain.HealthCheckResponse, error)
		GetEligibility(ctx context.Context, userID string) (*domain.EligibilityDecision, error)
		GetDonationSchedule(ctx context.Context, userID string) (*domain.DonationSchedule, error)
		CanDonate(ctx context.Context, userID string) (*domain.CanDonateResponse, error)
	}

	screeningService struct {
		screeningRepository ScreeningRepository
		s3                  storage.AwsS3
	}
)

func NewScreeningService(screeningRepository ScreeningRepository, s3 storage.AwsS3) ScreeningService {
	return &screeningService{
		screeningRepository: screeningRepository,
		s3:                  s3,
	}
}

func (s *screeningService) SubmitHealthCheck(ctx context.Context, req domain.SubmitHealthCheckRequest, userID string) (*domain.HealthCheckResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	checkID := uuid.New()

	var labReportURL string
	if req.LabReport != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("health-check-%s", checkID.String()),
			req.LabReport,
			"lab-reports",
			storage.AllowDocument...,
		)
		if err != nil {
			return nil, err
		}
		labReportURL = s.s3.GetPublicLinkKey(objectKey)
	}

	check := &entities.HealthCheck{
		ID:                    checkID,
		UserID:                userUUID,
		WeightKg:              req.WeightKg,
		Systolic:              req.Systolic,
		Diastolic:             req.Diastolic,
		Pulse:                 req.Pulse,
		Temperature:           req.Temperature,
		Hemoglobin:            req.Hemoglobin,
		IsCurrentlySick:       req.IsCurrentlySick,
		HasChronicConditions:  req.HasChronicConditions,
		HasInfectiousDiseases: req.HasInfectiousDiseases,
		HasRecentProcedures:   req.HasRecentProcedures,
		IsOnMedication:        req.IsOnMedication,
		IsFeelingHealthy:      req.IsFeelingHealthy,
		HasUnprotectedSex:     req.HasUnprotectedSex,
		HasUsedDrugs:          req.HasUsedDrugs,
		HasBeenInjected:       req.HasBeenInjected,
		IsPregnant:            req.IsPregnant,
		IsBreastfeeding:       req.IsBreastfeeding,
		LabReportURL:          labReportURL,
	}

	if err := s.screeningRepository.CreateHealthCheck(ctx, check); err != nil {
		return nil, err
	}

	return &domain.HealthCheckResponse{
		ID:           check.ID.String(),
		Decision:     Evaluate(req.HealthCheckAnswers),
		LabReportURL: labReportURL,
		CreatedAt:    check.CreatedAt,
	}, nil
}

func (s *screeningService) GetEligibility(ctx context.Context, userID string) (*domain.EligibilityDecision, error) {
	check, err := s.screeningRepository.GetLatestHealthCheck(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHealthCheckNotFound
		}
		return nil, err
	}

	decision := Evaluate(answersFromEntity(check))
	return &decision, nil
}

func (s *screeningService) GetDonationSchedule(ctx context.Context, userID string) (*domain.DonationSchedule, error) {
	donations, err := s.screeningRepository.GetDonationHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule := NextEligibleDate(historyFromEntities(donations), time.Now())
	return &schedule, nil
}

func (s *screeningService) CanDonate(ctx context.Context, userID string) (*domain.CanDonateResponse, error) {
	decision, err := s.GetEligibility(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrHealthCheckNotFound) {
			// No screening on file reads as a failed screening, not an error.
			decision = &domain.EligibilityDecision{Eligible: false, FailedCriteria: []string{"no health check on file"}}
		} else {
			return nil, err
		}
	}

	schedule, err := s.GetDonationSchedule(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.CanDonateResponse{
		CanDonate:       decision.Eligible && schedule.IsEligibleNow,
		HealthEligible:  decision.Eligible,
		RecencyEligible: schedule.IsEligibleNow,
		Decision:        *decision,
		Schedule:        *schedule,
	}, nil
}

func answersFromEntity(check *entities.HealthCheck) domain.HealthCheckAnswers {
	return domain.HealthCheckAnswers{
		WeightKg:              check.WeightKg,
		Systolic:              check.Systolic,
		Diastolic:             check.Diastolic,
		Pulse:                 check.Pulse,
		Temperature:           check.Temperature,
		Hemoglobin:            check.Hemoglobin,
		IsCurrentlySick:       check.IsCurrentlySick,
		HasChronicConditions:  check.HasChronicConditions,
		HasInfectiousDiseases: check.HasInfectiousDiseases,
		HasRecentProcedures:   check.HasRecentProcedures,
		IsOnMedication:        check.IsOnMedication,
		IsFeelingHealthy:      check.IsFeelingHealthy,
		HasUnprotectedSex:     check.HasUnprotectedSex,
		HasUsedDrugs:          check.HasUsedDrugs,
		HasBeenInjected:       check.HasBeenInjected,
		IsPregnant:            check.IsPregnant,
		IsBreastfeeding:       check.IsBreastfeeding,
	}
}

func historyFromEntities(donations []*entities.Donation) []domain.DonationHistoryRecord {
	history := make([]domain.DonationHistoryRecord, 0, len(donations))
	for _, d := range donations {
		history = append(history, domain.DonationHistoryRecord{
			DonationDate: d.DonationDate,
			Status:       d.Status,
			Component:    d.Component,
		})
	}
	return history
}
