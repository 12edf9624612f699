package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contact-api/internal/dto"
	"github.com/noah-isme/contact-api/internal/service"
	"github.com/noah-isme/contact-api/internal/utils"
	"github.com/noah-isme/contact-api/internal/validate"
)

// AdminContactHandler exposes admin contact management endpoints.
type AdminContactHandler struct {
	service service.AdminContactService
	logger  zerolog.Logger
}

// NewAdminContactHandler constructs the handler.
func NewAdminContactHandler(service service.AdminContactService, logger zerolog.Logger) *AdminContactHandler {
	return &AdminContactHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_contact_handler").Logger(),
	}
}

// Register attaches routes. Stats precedes the id route so "stats" is not
// captured as an identifier.
func (h *AdminContactHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/stats", h.stats)
	router.Get("/:id", h.get)
	router.Patch("/:id/status", h.updateStatus)
	router.Delete("/:id", h.delete)
}

func (h *AdminContactHandler) list(c *fiber.Ctx) error {
	if check := validate.Pagination(c.Query("page"), c.Query("limit")); !check.Valid {
		return utils.SendError(c, fiber.StatusBadRequest, check.Message)
	}

	req := dto.ContactListRequest{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
		Status:   strings.TrimSpace(c.Query("status")),
		Priority: strings.TrimSpace(c.Query("priority")),
	}
	if raw := strings.TrimSpace(c.Query("isSpam")); raw != "" {
		isSpam, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "isSpam must be a boolean")
		}
		req.IsSpam = &isSpam
	}

	result, err := h.service.List(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list contacts")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list contacts")
	}

	meta := fiber.Map{
		"pagination": result.Pagination,
		"filters": fiber.Map{
			"status":   req.Status,
			"priority": req.Priority,
		},
	}

	return utils.OK(c, result.Items, "contacts retrieved", meta)
}

func (h *AdminContactHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	contact, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "contact not found")
		}
		h.logger.Error().Err(err).Uint("contact_id", id).Msg("failed to fetch contact")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch contact")
	}

	return utils.SendSuccess(c, "contact retrieved", contact)
}

func (h *AdminContactHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ContactStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if check := validate.Status(status); !check.Valid {
		return utils.SendError(c, fiber.StatusBadRequest, check.Message)
	}

	contact, err := h.service.UpdateStatus(c.Context(), id, status)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "contact not found")
		}
		h.logger.Error().Err(err).Uint("contact_id", id).Msg("failed to update contact status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update contact status")
	}

	return utils.SendSuccess(c, "contact status updated", contact)
}

func (h *AdminContactHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "contact not found")
		}
		h.logger.Error().Err(err).Uint("contact_id", id).Msg("failed to delete contact")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete contact")
	}

	return utils.SendSuccess(c, "contact deleted", nil)
}

func (h *AdminContactHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch contact stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch contact stats")
	}

	return utils.SendSuccess(c, "contact stats retrieved", stats)
}
