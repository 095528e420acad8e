package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	exercises, err := handler.exerciseService.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newExerciseViews(exercises))
}

func (handler *Handler) GetExercise(c *fiber.Ctx) error {
	exerciseID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	exercise, err := handler.exerciseService.Get(exerciseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newExerciseView(exercise))
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	var body exerciseBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	name, err := requireString(body.Name, "nome")
	if err != nil {
		return respondError(c, err)
	}

	exercise, err := handler.exerciseService.Create(services.ExerciseInput{
		Name:        name,
		MuscleGroup: body.MuscleGroup,
		Equipment:   body.Equipment,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newExerciseView(exercise))
}

func (handler *Handler) UpdateExercise(c *fiber.Ctx) error {
	exerciseID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body exerciseBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	exercise, err := handler.exerciseService.Update(exerciseID, services.ExercisePatch{
		Name:        body.Name,
		MuscleGroup: body.MuscleGroup,
		Equipment:   body.Equipment,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newExerciseView(exercise))
}

func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	exerciseID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := handler.exerciseService.Delete(exerciseID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
