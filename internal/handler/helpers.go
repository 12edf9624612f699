package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contact-api/internal/validate"
)

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	if check := validate.ID(raw); !check.Valid {
		return 0, errors.New(check.Message)
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("Invalid ID format")
	}

	return uint(parsed), nil
}
