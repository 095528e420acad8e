package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

// DashboardSummary aggregates the authenticated user's last N days of
// training, 30 by default (?dias=N).
func (handler *Handler) DashboardSummary(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	windowDays := services.DefaultSummaryWindowDays
	if raw := c.Query("dias"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			windowDays = parsed
		}
	}

	summary, err := handler.dashboardService.Summarize(user.ID, windowDays, time.Now().In(handler.location))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
