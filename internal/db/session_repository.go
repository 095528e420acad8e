package db

import (
	"time"

	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

// SessionFilter narrows a session list. All fields are optional and combine
// with AND semantics. StartedToExclusive is the exclusive upper bound the
// caller derives from an inclusive date filter.
type SessionFilter struct {
	Modality           string
	StartedFrom        *time.Time
	StartedToExclusive *time.Time
}

func (repo *SessionRepository) ListByUser(userID uint, filter SessionFilter) ([]models.ActivitySession, error) {
	query := repo.database.Model(&models.ActivitySession{}).Where("user_id = ?", userID)
	if filter.Modality != "" {
		query = query.Where("modality = ?", filter.Modality)
	}
	if filter.StartedFrom != nil {
		query = query.Where("started_at >= ?", *filter.StartedFrom)
	}
	if filter.StartedToExclusive != nil {
		query = query.Where("started_at < ?", *filter.StartedToExclusive)
	}

	sessions := make([]models.ActivitySession, 0)
	if err := query.Order("started_at DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindByID is the unscoped lookup used by cross-resource validation, where
// a foreign-owned session must produce a field error instead of a 404.
func (repo *SessionRepository) FindByID(sessionID uint) (models.ActivitySession, error) {
	var session models.ActivitySession
	if err := repo.database.First(&session, sessionID).Error; err != nil {
		return models.ActivitySession{}, err
	}
	return session, nil
}

// FindOwned loads a session only when it belongs to userID. A foreign-owned
// id fails exactly like a missing one.
func (repo *SessionRepository) FindOwned(userID uint, sessionID uint) (models.ActivitySession, error) {
	var session models.ActivitySession
	if err := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error; err != nil {
		return models.ActivitySession{}, err
	}
	return session, nil
}

func (repo *SessionRepository) Create(session *models.ActivitySession) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) Save(session *models.ActivitySession) error {
	return repo.database.Save(session).Error
}

func (repo *SessionRepository) Delete(sessionID uint) error {
	return repo.database.Delete(&models.ActivitySession{}, sessionID).Error
}

// Dependents summarizes what still hangs off a session; deletion is blocked
// while any of these exist.
type SessionDependents struct {
	HasRunningMetrics bool
	HasCyclingMetrics bool
	StrengthSets      int64
	Checkins          int64
}

func (dependents SessionDependents) Any() bool {
	return dependents.HasRunningMetrics ||
		dependents.HasCyclingMetrics ||
		dependents.StrengthSets > 0 ||
		dependents.Checkins > 0
}

func (repo *SessionRepository) LoadDependents(sessionID uint) (SessionDependents, error) {
	dependents := SessionDependents{}

	var runningCount int64
	if err := repo.database.Model(&models.RunningMetrics{}).
		Where("session_id = ?", sessionID).
		Count(&runningCount).Error; err != nil {
		return SessionDependents{}, err
	}
	dependents.HasRunningMetrics = runningCount > 0

	var cyclingCount int64
	if err := repo.database.Model(&models.CyclingMetrics{}).
		Where("session_id = ?", sessionID).
		Count(&cyclingCount).Error; err != nil {
		return SessionDependents{}, err
	}
	dependents.HasCyclingMetrics = cyclingCount > 0

	if err := repo.database.Model(&models.StrengthSet{}).
		Where("session_id = ?", sessionID).
		Count(&dependents.StrengthSets).Error; err != nil {
		return SessionDependents{}, err
	}

	if err := repo.database.Model(&models.HabitCheckin{}).
		Where("session_id = ?", sessionID).
		Count(&dependents.Checkins).Error; err != nil {
		return SessionDependents{}, err
	}

	return dependents, nil
}
