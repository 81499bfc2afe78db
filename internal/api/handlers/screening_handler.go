package handlers

import (
	"errors"

	"BloodBank-API/domain"
	"BloodBank-API/internal/api/presenters"
	"BloodBank-API/pkg/screening"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScreeningHandler interface {
		SubmitHealthCheck(c *fiber.Ctx) error
		GetEligibility(c *fiber.Ctx) error
		GetDonationSchedule(c *fiber.Ctx) error
		CanDonate(c *fiber.Ctx) error
	}

	screeningHandler struct {
		screeningService screening.ScreeningService
		validator        *validator.Validate
	}
)

func NewScreeningHandler(screeningService screening.ScreeningService, validator *validator.Validate) ScreeningHandler {
	return &screeningHandler{
		screeningService: screeningService,
		validator:        validator,
	}
}

func (h *screeningHandler) SubmitHealthCheck(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitHealthCheckRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Optional lab report attachment
	req.LabReport, _ = c.FormFile("lab_report")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitHealthCheck, err)
	}

	result, err := h.screeningService.SubmitHealthCheck(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitHealthCheck, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessSubmitHealthCheck)
}

func (h *screeningHandler) GetEligibility(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	decision, err := h.screeningService.GetEligibility(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrHealthCheckNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEligibility, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEligibility, err)
	}

	return presenters.SuccessResponse(c, decision, fiber.StatusOK, domain.MessageSuccessGetEligibility)
}

func (h *screeningHandler) GetDonationSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	schedule, err := h.screeningService.GetDonationSchedule(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedule, err)
	}

	return presenters.SuccessResponse(c, schedule, fiber.StatusOK, domain.MessageSuccessGetSchedule)
}

func (h *screeningHandler) CanDonate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := h.screeningService.CanDonate(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEligibility, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetEligibility)
}
