package request

import (
	"context"
	"testing"
	"time"

	"BloodBank-API/domain"
	"BloodBank-API/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	requests      map[string]*entities.BloodRequest
	healthRecords map[string]*entities.HealthRecord
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{
		requests:      map[string]*entities.BloodRequest{},
		healthRecords: map[string]*entities.HealthRecord{},
	}
}

func (f *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.BloodRequest) error {
	f.requests[request.ID.String()] = request
	return nil
}

func (f *fakeRequestRepository) GetRequestByID(_ context.Context, id string) (*entities.BloodRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (f *fakeRequestRepository) GetOpenRequests(_ context.Context) ([]*entities.BloodRequest, error) {
	var open []*entities.BloodRequest
	for _, request := range f.requests {
		if request.Status == domain.RequestStatusOpen {
			open = append(open, request)
		}
	}
	return open, nil
}

func (f *fakeRequestRepository) UpdateRequestStatus(_ context.Context, id string, status string) error {
	request, ok := f.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeRequestRepository) GetHealthRecordByUserID(_ context.Context, userID string) (*entities.HealthRecord, error) {
	record, ok := f.healthRecords[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

type RequestServiceSuite struct {
	suite.Suite
	repo    *fakeRequestRepository
	service RequestService
	ctx     context.Context
	staffID string
}

func TestRequestServiceSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceSuite))
}

func (s *RequestServiceSuite) SetupTest() {
	s.repo = newFakeRequestRepository()
	s.service = NewRequestService(s.repo)
	s.ctx = context.Background()
	s.staffID = uuid.NewString()
}

func (s *RequestServiceSuite) openRequest(bloodType string) *domain.BloodRequest {
	created, err := s.service.CreateRequest(s.ctx, domain.CreateBloodRequestRequest{
		PatientName: "Patient",
		BloodType:   bloodType,
		QuantityCc:  450,
		Urgency:     "Urgent",
		NeededBy:    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	}, s.staffID)
	s.Require().NoError(err)
	return created
}

func (s *RequestServiceSuite) setDonorBloodType(donorID, bloodType string) {
	id := uuid.MustParse(donorID)
	s.repo.healthRecords[donorID] = &entities.HealthRecord{
		ID:        uuid.New(),
		UserID:    id,
		BloodType: bloodType,
	}
}

func (s *RequestServiceSuite) TestCreateRequest() {
	s.Run("creates an open request", func() {
		created := s.openRequest("AB+")
		s.Equal(domain.RequestStatusOpen, created.Status)
		s.Equal("AB+", created.BloodType)
	})

	s.Run("rejects unknown blood types", func() {
		_, err := s.service.CreateRequest(s.ctx, domain.CreateBloodRequestRequest{
			PatientName: "Patient",
			BloodType:   "Q+",
			QuantityCc:  450,
			Urgency:     "Normal",
			NeededBy:    "2025-07-01",
		}, s.staffID)
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
	})

	s.Run("rejects malformed dates", func() {
		_, err := s.service.CreateRequest(s.ctx, domain.CreateBloodRequestRequest{
			PatientName: "Patient",
			BloodType:   "A+",
			QuantityCc:  450,
			Urgency:     "Normal",
			NeededBy:    "July 1st",
		}, s.staffID)
		var validationErr *domain.ValidationError
		s.Require().ErrorAs(err, &validationErr)
	})
}

func (s *RequestServiceSuite) TestCloseRequest() {
	s.Run("closes an open request", func() {
		created := s.openRequest("A+")
		s.Require().NoError(s.service.CloseRequest(s.ctx, created.ID, domain.RequestStatusFulfilled))
		s.Equal(domain.RequestStatusFulfilled, s.repo.requests[created.ID].Status)
	})

	s.Run("closing twice fails", func() {
		created := s.openRequest("A+")
		s.Require().NoError(s.service.CloseRequest(s.ctx, created.ID, domain.RequestStatusClosed))
		s.Require().ErrorIs(s.service.CloseRequest(s.ctx, created.ID, domain.RequestStatusClosed), domain.ErrBloodRequestClosed)
	})

	s.Run("unknown request fails", func() {
		s.Require().ErrorIs(s.service.CloseRequest(s.ctx, uuid.NewString(), domain.RequestStatusClosed), domain.ErrBloodRequestNotFound)
	})
}

func (s *RequestServiceSuite) TestGetMatchingRequests() {
	s.Run("filters open requests by directed compatibility", func() {
		s.openRequest("A+")
		s.openRequest("AB+")
		s.openRequest("O-")
		s.openRequest("B+")

		donorID := uuid.NewString()
		s.setDonorBloodType(donorID, "A+")

		matches, err := s.service.GetMatchingRequests(s.ctx, donorID)
		s.Require().NoError(err)
		s.Len(matches, 2) // A+ may supply A+ and AB+

		types := map[string]bool{}
		for _, match := range matches {
			types[match.BloodType] = true
		}
		s.True(types["A+"])
		s.True(types["AB+"])
	})

	s.Run("closed requests never match", func() {
		s.SetupTest()
		created := s.openRequest("A+")
		s.Require().NoError(s.service.CloseRequest(s.ctx, created.ID, domain.RequestStatusFulfilled))

		donorID := uuid.NewString()
		s.setDonorBloodType(donorID, "O-")

		matches, err := s.service.GetMatchingRequests(s.ctx, donorID)
		s.Require().NoError(err)
		s.Empty(matches)
	})

	s.Run("donor without a health record gets an empty set", func() {
		s.SetupTest()
		s.openRequest("A+")
		matches, err := s.service.GetMatchingRequests(s.ctx, uuid.NewString())
		s.Require().NoError(err)
		s.Empty(matches)
	})

	s.Run("donor with an unparseable blood type gets an empty set", func() {
		s.SetupTest()
		s.openRequest("A+")
		donorID := uuid.NewString()
		s.setDonorBloodType(donorID, "unknown")

		matches, err := s.service.GetMatchingRequests(s.ctx, donorID)
		s.Require().NoError(err)
		s.Empty(matches)
	})
}
