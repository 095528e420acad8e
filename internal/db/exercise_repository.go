package db

import (
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) List(search string) ([]models.Exercise, error) {
	query := repo.database.Model(&models.Exercise{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR muscle_group LIKE ? OR equipment LIKE ?", pattern, pattern, pattern)
	}

	exercises := make([]models.Exercise, 0)
	if err := query.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByID(exerciseID uint) (models.Exercise, error) {
	var exercise models.Exercise
	if err := repo.database.First(&exercise, exerciseID).Error; err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) Save(exercise *models.Exercise) error {
	return repo.database.Save(exercise).Error
}

func (repo *ExerciseRepository) Delete(exerciseID uint) error {
	return repo.database.Delete(&models.Exercise{}, exerciseID).Error
}

// ReferencedBySets reports whether any strength set points at the exercise.
// Exercises in use are protected from deletion.
func (repo *ExerciseRepository) ReferencedBySets(exerciseID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.StrengthSet{}).
		Where("exercise_id = ?", exerciseID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
