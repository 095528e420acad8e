package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListStrengthSets(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	sessionID, err := queryUint(c, "sessao_id")
	if err != nil {
		return respondError(c, err)
	}
	exerciseID, err := queryUint(c, "exercicio_id")
	if err != nil {
		return respondError(c, err)
	}

	sets, err := handler.setService.List(user.ID, db.StrengthSetFilter{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newStrengthSetViews(sets))
}

func (handler *Handler) GetStrengthSet(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	setID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	set, err := handler.setService.Get(user.ID, setID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newStrengthSetView(set))
}

func (handler *Handler) CreateStrengthSet(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body strengthSetBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	sessionID, err := requireUint(body.SessionID, "sessao")
	if err != nil {
		return respondError(c, err)
	}
	exerciseID, err := requireUint(body.ExerciseID, "exercicio")
	if err != nil {
		return respondError(c, err)
	}

	set, err := handler.setService.Create(user.ID, services.StrengthSetInput{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Position:   body.Position,
		Reps:       body.Reps,
		LoadKg:     body.LoadKg,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newStrengthSetView(set))
}

func (handler *Handler) UpdateStrengthSet(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	setID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body strengthSetBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	set, err := handler.setService.Update(user.ID, setID, services.StrengthSetPatch{
		SessionID:  body.SessionID,
		ExerciseID: body.ExerciseID,
		Position:   body.Position,
		Reps:       body.Reps,
		LoadKg:     body.LoadKg,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newStrengthSetView(set))
}

// DeleteStrengthSet removes a set and renumbers the survivors so the
// session's positions stay contiguous from 1.
func (handler *Handler) DeleteStrengthSet(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	setID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := handler.setService.Delete(user.ID, setID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
