package handlers

import (
	"errors"

	"BloodBank-API/domain"
	"BloodBank-API/internal/api/presenters"
	"BloodBank-API/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateRequest(c *fiber.Ctx) error
		GetOpenRequests(c *fiber.Ctx) error
		CloseRequest(c *fiber.Ctx) error
		GetMatchingRequests(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateBloodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	created, err := h.requestService.CreateRequest(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) GetOpenRequests(c *fiber.Ctx) error {
	requests, err := h.requestService.GetOpenRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"requests": requests,
	}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) CloseRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")
	status := c.Query("status", domain.RequestStatusClosed)

	if err := h.requestService.CloseRequest(c.Context(), requestID, status); err != nil {
		if errors.Is(err, domain.ErrBloodRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCloseRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCloseRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCloseRequest)
}

func (h *requestHandler) GetMatchingRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	matches, err := h.requestService.GetMatchingRequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"matches": matches,
	}, fiber.StatusOK, domain.MessageSuccessGetMatches)
}
