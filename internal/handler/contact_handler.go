package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contact-api/internal/dto"
	"github.com/noah-isme/contact-api/internal/service"
	"github.com/noah-isme/contact-api/internal/utils"
)

// ContactHandler handles public contact submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires the public contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	// The sanitizer takes the first entry of a forwarded chain itself.
	ipAddress := c.Get("X-Forwarded-For")
	if ipAddress == "" {
		ipAddress = c.IP()
	}
	userAgent := c.Get("User-Agent")

	response, err := h.service.Submit(c.Context(), payload, ipAddress, userAgent)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.SendValidationError(c, validationErr.Result.Errors, dto.ValidationFailure{
				Errors: validationErr.Result.Errors,
				Spam:   validationErr.Result.Spam,
			})
		case errors.Is(err, service.ErrContactDuplicate):
			return utils.SendError(c, fiber.StatusTooManyRequests, "duplicate submission")
		default:
			h.logger.Error().Err(err).Msg("failed to process contact submission")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit contact form")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "contact submission accepted", response)
}
