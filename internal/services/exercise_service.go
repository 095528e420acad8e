package services

import (
	"strings"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
)

const msgExerciseInUse = "Não é possível excluir o exercício pois ele é usado em séries de musculação."

// ExerciseService manages the shared exercise catalog. Exercises are not
// owned by a user and are protected from deletion while referenced.
type ExerciseService struct {
	exercises *db.ExerciseRepository
}

func NewExerciseService(exercises *db.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

type ExerciseInput struct {
	Name        string
	MuscleGroup *string
	Equipment   *string
}

type ExercisePatch struct {
	Name        *string
	MuscleGroup *string
	Equipment   *string
}

func (service *ExerciseService) List(search string) ([]models.Exercise, error) {
	return service.exercises.List(search)
}

func (service *ExerciseService) Get(exerciseID uint) (models.Exercise, error) {
	return service.exercises.FindByID(exerciseID)
}

func (service *ExerciseService) Create(input ExerciseInput) (models.Exercise, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Exercise{}, NewFieldError("nome", msgTitleRequired)
	}

	exercise := models.Exercise{
		Name:        name,
		MuscleGroup: input.MuscleGroup,
		Equipment:   input.Equipment,
	}
	if err := service.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (service *ExerciseService) Update(exerciseID uint, patch ExercisePatch) (models.Exercise, error) {
	exercise, err := service.exercises.FindByID(exerciseID)
	if err != nil {
		return models.Exercise{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.Exercise{}, NewFieldError("nome", msgTitleRequired)
		}
		exercise.Name = name
	}
	if patch.MuscleGroup != nil {
		exercise.MuscleGroup = patch.MuscleGroup
	}
	if patch.Equipment != nil {
		exercise.Equipment = patch.Equipment
	}

	if err := service.exercises.Save(&exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (service *ExerciseService) Delete(exerciseID uint) error {
	exercise, err := service.exercises.FindByID(exerciseID)
	if err != nil {
		return err
	}

	referenced, err := service.exercises.ReferencedBySets(exercise.ID)
	if err != nil {
		return err
	}
	if referenced {
		return NewValidationError(msgExerciseInUse)
	}
	return service.exercises.Delete(exercise.ID)
}
