package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	if sqlDB, err := handler.db.DB(); err != nil || sqlDB.Ping() != nil {
		return detailJSON(c, fiber.StatusServiceUnavailable, "banco de dados indisponível")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
