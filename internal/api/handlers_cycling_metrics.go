package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListCyclingMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	rows, err := handler.metricsService.ListCycling(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newCyclingMetricsViews(rows))
}

func (handler *Handler) GetCyclingMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	row, err := handler.metricsService.GetCycling(user.ID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newCyclingMetricsView(row))
}

func (handler *Handler) CreateCyclingMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body cyclingMetricsBody
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
	speed, err := requireFloat(body.AvgSpeedKmh, "velocidade_media_kmh")
	if err != nil {
		return respondError(c, err)
	}

	row, err := handler.metricsService.CreateCycling(user.ID, services.CyclingMetricsInput{
		SessionID:    sessionID,
		DistanceKm:   distance,
		AvgSpeedKmh:  speed,
		AvgHeartRate: body.AvgHeartRate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newCyclingMetricsView(row))
}

func (handler *Handler) UpdateCyclingMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body cyclingMetricsBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	row, err := handler.metricsService.UpdateCycling(user.ID, sessionID, services.CyclingMetricsPatch{
		DistanceKm:   body.DistanceKm,
		AvgSpeedKmh:  body.AvgSpeedKmh,
		AvgHeartRate: body.AvgHeartRate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newCyclingMetricsView(row))
}

func (handler *Handler) DeleteCyclingMetrics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := handler.metricsService.DeleteCycling(user.ID, sessionID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
