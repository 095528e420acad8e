package db

import (
	"time"

	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type HabitCheckinRepository struct {
	database *gorm.DB
}

func NewHabitCheckinRepository(database *gorm.DB) *HabitCheckinRepository {
	return &HabitCheckinRepository{database: database}
}

type HabitCheckinFilter struct {
	GoalID          *uint
	DateFrom        *time.Time
	DateToExclusive *time.Time
}

func (repo *HabitCheckinRepository) ListByUser(userID uint, filter HabitCheckinFilter) ([]models.HabitCheckin, error) {
	query := repo.database.Model(&models.HabitCheckin{}).Where("user_id = ?", userID)
	if filter.GoalID != nil {
		query = query.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateToExclusive != nil {
		query = query.Where("date < ?", *filter.DateToExclusive)
	}

	checkins := make([]models.HabitCheckin, 0)
	if err := query.Order("date ASC, id ASC").Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

func (repo *HabitCheckinRepository) FindOwned(userID uint, checkinID uint) (models.HabitCheckin, error) {
	var checkin models.HabitCheckin
	if err := repo.database.
		Where("id = ? AND user_id = ?", checkinID, userID).
		First(&checkin).Error; err != nil {
		return models.HabitCheckin{}, err
	}
	return checkin, nil
}

// ExistsForGoalDate re-checks the (goal, date) uniqueness the storage index
// ultimately guarantees, ignoring the row under update.
func (repo *HabitCheckinRepository) ExistsForGoalDate(goalID uint, dayStart time.Time, dayEnd time.Time, excludeCheckinID uint) (bool, error) {
	query := repo.database.Model(&models.HabitCheckin{}).
		Where("goal_id = ? AND date >= ? AND date < ?", goalID, dayStart, dayEnd)
	if excludeCheckinID != 0 {
		query = query.Where("id <> ?", excludeCheckinID)
	}

	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *HabitCheckinRepository) Create(checkin *models.HabitCheckin) error {
	return repo.database.Create(checkin).Error
}

func (repo *HabitCheckinRepository) Save(checkin *models.HabitCheckin) error {
	return repo.database.Save(checkin).Error
}

func (repo *HabitCheckinRepository) Delete(checkinID uint) error {
	return repo.database.Delete(&models.HabitCheckin{}, checkinID).Error
}
