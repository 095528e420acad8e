package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
	"gorm.io/gorm"
)

const (
	msgNotFound       = "Não encontrado."
	msgInvalidBody    = "Corpo da requisição inválido."
	msgInternalError  = "Erro interno do servidor."
	msgFieldRequired  = "Este campo é obrigatório."
	msgInvalidEmail   = "Insira um endereço de email válido."
	msgBadCredentials = "Credenciais inválidas."
)

func detailJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"detail": message})
}

func fieldErrorJSON(c *fiber.Ctx, field string, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{field: message})
}

// respondError translates service-layer failures into the API's error
// payloads: per-field messages keyed by the field name, everything else
// under "detail".
func respondError(c *fiber.Ctx, err error) error {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErrorJSON(c, fieldErr.Field, fieldErr.Message)
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return detailJSON(c, fiber.StatusBadRequest, validationErr.Message)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return detailJSON(c, fiber.StatusNotFound, msgNotFound)
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return detailJSON(c, fiber.StatusBadRequest, msgBadCredentials)
	}

	return detailJSON(c, fiber.StatusInternalServerError, msgInternalError)
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return uint(id), nil
}
