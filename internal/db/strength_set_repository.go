package db

import (
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type StrengthSetRepository struct {
	database *gorm.DB
}

func NewStrengthSetRepository(database *gorm.DB) *StrengthSetRepository {
	return &StrengthSetRepository{database: database}
}

type StrengthSetFilter struct {
	SessionID  *uint
	ExerciseID *uint
}

func (repo *StrengthSetRepository) ownedQuery(userID uint) *gorm.DB {
	return repo.database.Model(&models.StrengthSet{}).
		Joins("JOIN activity_sessions ON activity_sessions.id = strength_sets.session_id").
		Where("activity_sessions.user_id = ?", userID)
}

func (repo *StrengthSetRepository) ListByOwner(userID uint, filter StrengthSetFilter) ([]models.StrengthSet, error) {
	query := repo.ownedQuery(userID)
	if filter.SessionID != nil {
		query = query.Where("strength_sets.session_id = ?", *filter.SessionID)
	}
	if filter.ExerciseID != nil {
		query = query.Where("strength_sets.exercise_id = ?", *filter.ExerciseID)
	}

	sets := make([]models.StrengthSet, 0)
	if err := query.
		Order("strength_sets.session_id ASC, strength_sets.position ASC, strength_sets.id ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (repo *StrengthSetRepository) FindOwned(userID uint, setID uint) (models.StrengthSet, error) {
	var set models.StrengthSet
	if err := repo.ownedQuery(userID).
		Where("strength_sets.id = ?", setID).
		First(&set).Error; err != nil {
		return models.StrengthSet{}, err
	}
	return set, nil
}

// MaxPosition returns the highest position in the session, zero when empty.
func (repo *StrengthSetRepository) MaxPosition(sessionID uint) (int, error) {
	var set models.StrengthSet
	result := repo.database.
		Where("session_id = ?", sessionID).
		Order("position DESC").
		Limit(1).
		Find(&set)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}
	return set.Position, nil
}

// PositionTaken checks the per-session uniqueness of a position, ignoring
// the row under update when excludeSetID is non-zero.
func (repo *StrengthSetRepository) PositionTaken(sessionID uint, position int, excludeSetID uint) (bool, error) {
	query := repo.database.Model(&models.StrengthSet{}).
		Where("session_id = ? AND position = ?", sessionID, position)
	if excludeSetID != 0 {
		query = query.Where("id <> ?", excludeSetID)
	}

	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *StrengthSetRepository) ListBySession(sessionID uint) ([]models.StrengthSet, error) {
	sets := make([]models.StrengthSet, 0)
	if err := repo.database.
		Where("session_id = ?", sessionID).
		Order("position ASC, id ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (repo *StrengthSetRepository) Create(set *models.StrengthSet) error {
	return repo.database.Create(set).Error
}

func (repo *StrengthSetRepository) Save(set *models.StrengthSet) error {
	return repo.database.Save(set).Error
}

// DeleteAndRenumber removes a set and closes the gap: the survivors are
// re-read ordered by (position, id) and assigned 1..N, touching only rows
// whose position actually changes.
func (repo *StrengthSetRepository) DeleteAndRenumber(setID uint, sessionID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.StrengthSet{}, setID).Error; err != nil {
			return err
		}

		remaining := make([]models.StrengthSet, 0)
		if err := tx.
			Where("session_id = ?", sessionID).
			Order("position ASC, id ASC").
			Find(&remaining).Error; err != nil {
			return err
		}

		for index, set := range remaining {
			expected := index + 1
			if set.Position == expected {
				continue
			}
			if err := tx.Model(&models.StrengthSet{}).
				Where("id = ?", set.ID).
				Update("position", expected).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
