package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

// Running metrics are keyed by their session: the :id URL parameter is the
// session ID, not a row ID of its own.

func (handler *Handler) ListRunningMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	rows, err := handler.metricsService.ListRunning(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newRunningMetricsViews(rows))
}

func (handler *Handler) GetRunningMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	row, err := handler.metricsService.GetRunning(user.ID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newRunningMetricsView(row))
}

func (handler *Handler) CreateRunningMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body runningMetricsBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	sessionID, err := requireUint(body.SessionID, "sessao")
	if err != nil {
		return respondError(c, err)
	}
	distance, err := requireFloat(body.DistanceKm, "distancia_km")
	if err != nil {
		return respondError(c, err)
	}
	pace, err := requireInt(body.AvgPaceSecPerKm, "ritmo_medio_seg_km")
	if err != nil {
		return respondError(c, err)
	}

	row, err := handler.metricsService.CreateRunning(user.ID, services.RunningMetricsInput{
		SessionID:       sessionID,
		DistanceKm:      distance,
		AvgPaceSecPerKm: pace,
		AvgHeartRate:    body.AvgHeartRate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newRunningMetricsView(row))
}

func (handler *Handler) UpdateRunningMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body runningMetricsBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	row, err := handler.metricsService.UpdateRunning(user.ID, sessionID, services.RunningMetricsPatch{
		DistanceKm:      body.DistanceKm,
		AvgPaceSecPerKm: body.AvgPaceSecPerKm,
		AvgHeartRate:    body.AvgHeartRate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newRunningMetricsView(row))
}

func (handler *Handler) DeleteRunningMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := handler.metricsService.DeleteRunning(user.ID, sessionID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
