package services

import (
	"errors"
	"time"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

const (
	msgInvalidGoal        = "Meta inválida."
	msgForeignGoal        = "Você só pode marcar dias de metas que são suas."
	msgForeignSessionLink = "Você só pode vincular sessões que são suas."
	msgDuplicateCheckin   = "Já existe uma marcação para essa meta nesse dia."
)

type HabitCheckinService struct {
	checkins *db.HabitCheckinRepository
	goals    *db.HabitGoalRepository
	sessions *db.SessionRepository
}

func NewHabitCheckinService(checkins *db.HabitCheckinRepository, goals *db.HabitGoalRepository, sessions *db.SessionRepository) *HabitCheckinService {
	return &HabitCheckinService{checkins: checkins, goals: goals, sessions: sessions}
}

type HabitCheckinInput struct {
	GoalID    uint
	Date      time.Time
	SessionID *uint
	Completed *bool
}

type HabitCheckinPatch struct {
	GoalID    *uint
	Date      *time.Time
	SessionID *uint
	Completed *bool
}

func (service *HabitCheckinService) List(userID uint, filter db.HabitCheckinFilter) ([]models.HabitCheckin, error) {
	return service.checkins.ListByUser(userID, filter)
}

func (service *HabitCheckinService) Get(userID uint, checkinID uint) (models.HabitCheckin, error) {
	return service.checkins.FindOwned(userID, checkinID)
}

func (service *HabitCheckinService) Create(userID uint, input HabitCheckinInput) (models.HabitCheckin, error) {
	checkin := models.HabitCheckin{
		GoalID:    input.GoalID,
		UserID:    userID,
		Date:      input.Date,
		SessionID: input.SessionID,
		Completed: true,
	}
	if input.Completed != nil {
		checkin.Completed = *input.Completed
	}

	if err := service.validateCheckin(userID, checkin, 0); err != nil {
		return models.HabitCheckin{}, err
	}
	if err := service.checkins.Create(&checkin); err != nil {
		return models.HabitCheckin{}, err
	}
	return checkin, nil
}

func (service *HabitCheckinService) Update(userID uint, checkinID uint, patch HabitCheckinPatch) (models.HabitCheckin, error) {
	checkin, err := service.checkins.FindOwned(userID, checkinID)
	if err != nil {
		return models.HabitCheckin{}, err
	}

	if patch.GoalID != nil {
		checkin.GoalID = *patch.GoalID
	}
	if patch.Date != nil {
		checkin.Date = *patch.Date
	}
	if patch.SessionID != nil {
		checkin.SessionID = patch.SessionID
	}
	if patch.Completed != nil {
		checkin.Completed = *patch.Completed
	}

	checkin.UserID = userID

	if err := service.validateCheckin(userID, checkin, checkin.ID); err != nil {
		return models.HabitCheckin{}, err
	}
	if err := service.checkins.Save(&checkin); err != nil {
		return models.HabitCheckin{}, err
	}
	return checkin, nil
}

func (service *HabitCheckinService) Delete(userID uint, checkinID uint) error {
	checkin, err := service.checkins.FindOwned(userID, checkinID)
	if err != nil {
		return err
	}
	return service.checkins.Delete(checkin.ID)
}

func (service *HabitCheckinService) validateCheckin(userID uint, checkin models.HabitCheckin, excludeCheckinID uint) error {
	goal, err := service.goals.FindByID(checkin.GoalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewFieldError("meta", msgInvalidGoal)
		}
		return err
	}
	if goal.UserID != userID {
		return NewFieldError("meta", msgForeignGoal)
	}

	if checkin.SessionID != nil {
		session, err := service.sessions.FindByID(*checkin.SessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewFieldError("sessao", msgInvalidSession)
			}
			return err
		}
		if session.UserID != userID {
			return NewFieldError("sessao", msgForeignSessionLink)
		}
	}

	dayStart, dayEnd := dayBounds(checkin.Date)
	duplicate, err := service.checkins.ExistsForGoalDate(checkin.GoalID, dayStart, dayEnd, excludeCheckinID)
	if err != nil {
		return err
	}
	if duplicate {
		return NewFieldError("data", msgDuplicateCheckin)
	}
	return nil
}

// dayBounds returns the [start, end) window of the calendar day holding t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
