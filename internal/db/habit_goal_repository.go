package db

import (
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type HabitGoalRepository struct {
	database *gorm.DB
}

func NewHabitGoalRepository(database *gorm.DB) *HabitGoalRepository {
	return &HabitGoalRepository{database: database}
}

func (repo *HabitGoalRepository) ListByUser(userID uint, active bool) ([]models.HabitGoal, error) {
	goals := make([]models.HabitGoal, 0)
	if err := repo.database.
		Where("user_id = ? AND active = ?", userID, active).
		Order("id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByID is unscoped; check-in validation uses it to tell a foreign-owned
// goal (field error) apart from a missing one.
func (repo *HabitGoalRepository) FindByID(goalID uint) (models.HabitGoal, error) {
	var goal models.HabitGoal
	if err := repo.database.First(&goal, goalID).Error; err != nil {
		return models.HabitGoal{}, err
	}
	return goal, nil
}

func (repo *HabitGoalRepository) FindOwned(userID uint, goalID uint) (models.HabitGoal, error) {
	var goal models.HabitGoal
	if err := repo.database.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		return models.HabitGoal{}, err
	}
	return goal, nil
}

func (repo *HabitGoalRepository) Create(goal *models.HabitGoal) error {
	return repo.database.Create(goal).Error
}

func (repo *HabitGoalRepository) Save(goal *models.HabitGoal) error {
	return repo.database.Save(goal).Error
}

func (repo *HabitGoalRepository) Delete(goalID uint) error {
	return repo.database.Delete(&models.HabitGoal{}, goalID).Error
}

// HasCheckins decides the soft-vs-hard delete branch: goals with recorded
// history are deactivated instead of removed.
func (repo *HabitGoalRepository) HasCheckins(goalID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.HabitCheckin{}).
		Where("goal_id = ?", goalID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
