package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListHabitGoals(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goals, err := handler.goalService.List(user.ID, activeFilter(c.Query("ativo")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitGoalViews(goals))
}

func (handler *Handler) GetHabitGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	goal, err := handler.goalService.Get(user.ID, goalID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitGoalView(goal))
}

func (handler *Handler) CreateHabitGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body habitGoalBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	title, err := requireString(body.Title, "titulo")
	if err != nil {
		return respondError(c, err)
	}
	modality, err := requireString(body.Modality, "modalidade")
	if err != nil {
		return respondError(c, err)
	}
	rawStart, err := requireString(body.StartDate, "data_inicio")
	if err != nil {
		return respondError(c, err)
	}
	startDate, err := parseDate(rawStart, "data_inicio", handler.location)
	if err != nil {
		return respondError(c, err)
	}

	input := services.HabitGoalInput{
		Title:             title,
		Modality:          modality,
		StartDate:         startDate,
		WeeklyFrequency:   body.WeeklyFrequency,
		DistanceTargetKm:  body.DistanceTargetKm,
		DurationTargetMin: body.DurationTargetMin,
		SessionTarget:     body.SessionTarget,
	}
	if body.EndDate != nil {
		endDate, err := parseDate(*body.EndDate, "data_fim", handler.location)
		if err != nil {
			return respondError(c, err)
		}
		input.EndDate = &endDate
	}

	goal, err := handler.goalService.Create(user.ID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newHabitGoalView(goal))
}

func (handler *Handler) UpdateHabitGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body habitGoalBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	patch := services.HabitGoalPatch{
		Title:             body.Title,
		Modality:          body.Modality,
		WeeklyFrequency:   body.WeeklyFrequency,
		DistanceTargetKm:  body.DistanceTargetKm,
		DurationTargetMin: body.DurationTargetMin,
		SessionTarget:     body.SessionTarget,
		Active:            body.Active,
	}
	if body.StartDate != nil {
		startDate, err := parseDate(*body.StartDate, "data_inicio", handler.location)
		if err != nil {
			return respondError(c, err)
		}
		patch.StartDate = &startDate
	}
	if body.EndDate != nil {
		endDate, err := parseDate(*body.EndDate, "data_fim", handler.location)
		if err != nil {
			return respondError(c, err)
		}
		patch.EndDate = &endDate
	}

	goal, err := handler.goalService.Update(user.ID, goalID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitGoalView(goal))
}

// CloseHabitGoal deactivates a goal, stamping today as its end date when
// that does not precede the start.
func (handler *Handler) CloseHabitGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	now := time.Now().In(handler.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, handler.location)

	goal, err := handler.goalService.Close(user.ID, goalID, today)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newHabitGoalView(goal))
}

// DeleteHabitGoal soft-deletes goals with check-in history and hard-deletes
// the rest, telling the caller which happened.
func (handler *Handler) DeleteHabitGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	message, err := handler.goalService.Delete(user.ID, goalID)
	if err != nil {
		return respondError(c, err)
	}
	return detailJSON(c, fiber.StatusOK, message)
}
