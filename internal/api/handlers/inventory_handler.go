package handlers

import (
	"errors"
	"strconv"

	"BloodBank-API/domain"
	"BloodBank-API/internal/api/presenters"
	"BloodBank-API/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		SplitDonation(c *fiber.Ctx) error
		ApproveUnit(c *fiber.Ctx) error
		RejectUnit(c *fiber.Ctx) error
		ReserveUnit(c *fiber.Ctx) error
		ReleaseUnit(c *fiber.Ctx) error
		ConsumeUnit(c *fiber.Ctx) error
		ExpireSweep(c *fiber.Ctx) error
		GetInventory(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

// inventoryErrorStatus distinguishes state conflicts (refresh and retry) from
// validation problems (fix the form) and missing lookups.
func inventoryErrorStatus(err error) int {
	var conflict *domain.StateConflictError
	if errors.As(err, &conflict) {
		return fiber.StatusConflict
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return fiber.StatusBadRequest
	}
	if errors.Is(err, domain.ErrInventoryUnitNotFound) ||
		errors.Is(err, domain.ErrDonationNotFound) ||
		errors.Is(err, domain.ErrHealthRecordNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *inventoryHandler) SplitDonation(c *fiber.Ctx) error {
	req := new(domain.SplitDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.DonationID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSplitDonation, err)
	}

	units, err := h.inventoryService.SplitDonation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedSplitDonation, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"units": units,
	}, fiber.StatusCreated, domain.MessageSuccessSplitDonation)
}

func (h *inventoryHandler) ApproveUnit(c *fiber.Ctx) error {
	req := new(domain.ApproveUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UnitID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUnit, err)
	}

	unit, err := h.inventoryService.ApproveUnit(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedUpdateUnit, err)
	}

	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.MessageSuccessUpdateUnit)
}

func (h *inventoryHandler) RejectUnit(c *fiber.Ctx) error {
	unit, err := h.inventoryService.RejectUnit(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedUpdateUnit, err)
	}
	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.MessageSuccessUpdateUnit)
}

func (h *inventoryHandler) ReserveUnit(c *fiber.Ctx) error {
	req := new(domain.ReserveUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UnitID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUnit, err)
	}

	unit, err := h.inventoryService.ReserveUnit(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedUpdateUnit, err)
	}

	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.MessageSuccessUpdateUnit)
}

func (h *inventoryHandler) ReleaseUnit(c *fiber.Ctx) error {
	unit, err := h.inventoryService.ReleaseUnit(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedUpdateUnit, err)
	}
	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.MessageSuccessUpdateUnit)
}

func (h *inventoryHandler) ConsumeUnit(c *fiber.Ctx) error {
	unit, err := h.inventoryService.ConsumeUnit(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, inventoryErrorStatus(err), domain.MessageFailedUpdateUnit, err)
	}
	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.MessageSuccessUpdateUnit)
}

func (h *inventoryHandler) ExpireSweep(c *fiber.Ctx) error {
	result, err := h.inventoryService.ExpireOverdueUnits(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExpireSweep, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessExpireSweep)
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	units, count, err := h.inventoryService.GetInventory(
		c.Context(),
		c.Query("status"),
		c.Query("blood_type"),
		page,
		limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"units": units,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetInventory)
}
