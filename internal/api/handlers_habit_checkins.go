package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListHabitCheckins(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	filter := db.HabitCheckinFilter{}
	goalID, err := queryUint(c, "meta_id")
	if err != nil {
		return respondError(c, err)
	}
	filter.GoalID = goalID

	from, err := queryDate(c, "data_inicio", handler.location)
	if err != nil {
		return respondError(c, err)
	}
	filter.DateFrom = from

	to, err := queryDate(c, "data_fim", handler.location)
	if err != nil {
		return respondError(c, err)
	}
	if to != nil {
		end := to.AddDate(0, 0, 1)
		filter.DateToExclusive = &end
	}

	checkins, err := handler.checkinService.List(user.ID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitCheckinViews(checkins))
}

func (handler *Handler) GetHabitCheckin(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	checkinID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	checkin, err := handler.checkinService.Get(user.ID, checkinID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitCheckinView(checkin))
}

func (handler *Handler) CreateHabitCheckin(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body habitCheckinBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	goalID, err := requireUint(body.GoalID, "meta")
	if err != nil {
		return respondError(c, err)
	}
	rawDate, err := requireString(body.Date, "data")
	if err != nil {
		return respondError(c, err)
	}
	date, err := parseDate(rawDate, "data", handler.location)
	if err != nil {
		return respondError(c, err)
	}

	checkin, err := handler.checkinService.Create(user.ID, services.HabitCheckinInput{
		GoalID:    goalID,
		Date:      date,
		SessionID: body.SessionID,
		Completed: body.Completed,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newHabitCheckinView(checkin))
}

func (handler *Handler) UpdateHabitCheckin(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	checkinID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body habitCheckinBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	patch := services.HabitCheckinPatch{
		GoalID:    body.GoalID,
		SessionID: body.SessionID,
		Completed: body.Completed,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date, "data", handler.location)
		if err != nil {
			return respondError(c, err)
		}
		patch.Date = &date
	}

	checkin, err := handler.checkinService.Update(user.ID, checkinID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitCheckinView(checkin))
}

func (handler *Handler) DeleteHabitCheckin(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	checkinID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := handler.checkinService.Delete(user.ID, checkinID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
