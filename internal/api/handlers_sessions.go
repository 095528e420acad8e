package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	filter := db.SessionFilter{Modality: strings.TrimSpace(c.Query("modalidade"))}

	from, err := queryDate(c, "inicio_em_inicio", handler.location)
	if err != nil {
		return respondError(c, err)
	}
	filter.StartedFrom = from

	to, err := queryDate(c, "inicio_em_fim", handler.location)
	if err != nil {
		return respondError(c, err)
	}
	if to != nil {
		// The upper bound is a date; include the whole day.
		end := to.AddDate(0, 0, 1)
		filter.StartedToExclusive = &end
	}

	sessions, err := handler.sessionService.List(user.ID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionViews(sessions))
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	session, err := handler.sessionService.Get(user.ID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionView(session))
}

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body sessionBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	modality, err := requireString(body.Modality, "modalidade")
	if err != nil {
		return respondError(c, err)
	}
	rawStartedAt, err := requireString(body.StartedAt, "inicio_em")
	if err != nil {
		return respondError(c, err)
	}
	startedAt, err := parseDateTime(rawStartedAt, "inicio_em", handler.location)
	if err != nil {
		return respondError(c, err)
	}

	session, err := handler.sessionService.Create(user.ID, services.SessionInput{
		Modality:    modality,
		StartedAt:   startedAt,
		DurationSec: body.DurationSec,
		Calories:    body.Calories,
		Notes:       body.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newSessionView(session))
}

func (handler *Handler) UpdateSession(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body sessionBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	patch := services.SessionPatch{
		Modality:    body.Modality,
		DurationSec: body.DurationSec,
		Calories:    body.Calories,
		Notes:       body.Notes,
	}
	if body.StartedAt != nil {
		startedAt, err := parseDateTime(*body.StartedAt, "inicio_em", handler.location)
		if err != nil {
			return respondError(c, err)
		}
		patch.StartedAt = &startedAt
	}

	session, err := handler.sessionService.Update(user.ID, sessionID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionView(session))
}

// DeleteSession refuses to drop sessions that still carry metrics, sets or
// habit check-ins, reporting what blocks the deletion.
func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	sessionID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	message, err := handler.sessionService.DeleteGuarded(user.ID, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return detailJSON(c, fiber.StatusOK, message)
}
