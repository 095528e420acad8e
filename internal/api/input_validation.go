package api

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

const (
	msgInvalidDate     = "Data inválida. Use o formato AAAA-MM-DD."
	msgInvalidDateTime = "Data/hora inválida. Use o formato ISO 8601."
	msgInvalidID       = "Identificador inválido."
)

func parseBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return services.NewValidationError(msgInvalidBody)
	}
	return nil
}

func requireString(value *string, field string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", services.NewFieldError(field, msgFieldRequired)
	}
	return strings.TrimSpace(*value), nil
}

func requireUint(value *uint, field string) (uint, error) {
	if value == nil || *value == 0 {
		return 0, services.NewFieldError(field, msgFieldRequired)
	}
	return *value, nil
}

func requireFloat(value *float64, field string) (float64, error) {
	if value == nil {
		return 0, services.NewFieldError(field, msgFieldRequired)
	}
	return *value, nil
}

func requireInt(value *int, field string) (int, error) {
	if value == nil {
		return 0, services.NewFieldError(field, msgFieldRequired)
	}
	return *value, nil
}

func validateEmailFormat(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return services.NewFieldError("email", msgInvalidEmail)
	}
	return nil
}

// parseDate parses a date-only value (AAAA-MM-DD) in the server timezone.
func parseDate(raw string, field string, location *time.Location) (time.Time, error) {
	value, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, services.NewFieldError(field, msgInvalidDate)
	}
	return value, nil
}

// parseDateTime accepts full RFC 3339 timestamps and two common shorthand
// forms (no offset, date-only), interpreting the latter in the server
// timezone.
func parseDateTime(raw string, field string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if value, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return value, nil
	}
	if value, err := time.ParseInLocation("2006-01-02T15:04:05", trimmed, location); err == nil {
		return value, nil
	}
	if value, err := time.ParseInLocation(dateLayout, trimmed, location); err == nil {
		return value, nil
	}
	return time.Time{}, services.NewFieldError(field, msgInvalidDateTime)
}

func queryDate(c *fiber.Ctx, name string, location *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := parseDate(raw, name, location)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func queryDateTime(c *fiber.Ctx, name string, location *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := parseDateTime(raw, name, location)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func queryUint(c *fiber.Ctx, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, services.NewFieldError(name, msgInvalidID)
	}
	id := uint(value)
	return &id, nil
}

// activeFilter maps the ?ativo= query parameter: only the explicit strings
// "false" and "0" disable the default active-only listing.
func activeFilter(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "false", "0":
		return false
	default:
		return true
	}
}
