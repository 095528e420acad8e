package services

import (
	"time"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
)

const (
	msgEndBeforeStart = "A data final do hábito não pode ser anterior à data de início."
	msgNoTarget       = "A meta de hábito deve ter pelo menos um 'alvo' definido (frequência, distância, duração ou sessões)."
	msgTitleRequired  = "Este campo é obrigatório."

	MsgGoalDeactivated = "Meta encerrada (desativada), pois já possui um histórico de marcações."
	MsgGoalDeleted     = "Meta permanentemente excluída, pois não possuía histórico."
)

type HabitGoalService struct {
	goals *db.HabitGoalRepository
}

func NewHabitGoalService(goals *db.HabitGoalRepository) *HabitGoalService {
	return &HabitGoalService{goals: goals}
}

type HabitGoalInput struct {
	Title             string
	Modality          string
	StartDate         time.Time
	EndDate           *time.Time
	WeeklyFrequency   *int
	DistanceTargetKm  *float64
	DurationTargetMin *int
	SessionTarget     *int
}

type HabitGoalPatch struct {
	Title             *string
	Modality          *string
	StartDate         *time.Time
	EndDate           *time.Time
	WeeklyFrequency   *int
	DistanceTargetKm  *float64
	DurationTargetMin *int
	SessionTarget     *int
	Active            *bool
}

func (service *HabitGoalService) List(userID uint, active bool) ([]models.HabitGoal, error) {
	return service.goals.ListByUser(userID, active)
}

func (service *HabitGoalService) Get(userID uint, goalID uint) (models.HabitGoal, error) {
	return service.goals.FindOwned(userID, goalID)
}

func (service *HabitGoalService) Create(userID uint, input HabitGoalInput) (models.HabitGoal, error) {
	goal := models.HabitGoal{
		UserID:            userID,
		Title:             input.Title,
		Modality:          input.Modality,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		WeeklyFrequency:   input.WeeklyFrequency,
		DistanceTargetKm:  input.DistanceTargetKm,
		DurationTargetMin: input.DurationTargetMin,
		SessionTarget:     input.SessionTarget,
		Active:            true,
	}
	if err := validateGoalFields(goal); err != nil {
		return models.HabitGoal{}, err
	}

	if err := service.goals.Create(&goal); err != nil {
		return models.HabitGoal{}, err
	}
	return goal, nil
}

func (service *HabitGoalService) Update(userID uint, goalID uint, patch HabitGoalPatch) (models.HabitGoal, error) {
	goal, err := service.goals.FindOwned(userID, goalID)
	if err != nil {
		return models.HabitGoal{}, err
	}

	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Modality != nil {
		goal.Modality = *patch.Modality
	}
	if patch.StartDate != nil {
		goal.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		goal.EndDate = patch.EndDate
	}
	if patch.WeeklyFrequency != nil {
		goal.WeeklyFrequency = patch.WeeklyFrequency
	}
	if patch.DistanceTargetKm != nil {
		goal.DistanceTargetKm = patch.DistanceTargetKm
	}
	if patch.DurationTargetMin != nil {
		goal.DurationTargetMin = patch.DurationTargetMin
	}
	if patch.SessionTarget != nil {
		goal.SessionTarget = patch.SessionTarget
	}
	if patch.Active != nil {
		goal.Active = *patch.Active
		// Reactivating without an explicit end date reopens the goal.
		if *patch.Active && patch.EndDate == nil {
			goal.EndDate = nil
		}
	}

	goal.UserID = userID

	if err := validateGoalFields(goal); err != nil {
		return models.HabitGoal{}, err
	}
	if err := service.goals.Save(&goal); err != nil {
		return models.HabitGoal{}, err
	}
	return goal, nil
}

// Close deactivates a goal. The end date becomes today only when the goal
// has already started; a goal closed before its start keeps no end date.
func (service *HabitGoalService) Close(userID uint, goalID uint, today time.Time) (models.HabitGoal, error) {
	goal, err := service.goals.FindOwned(userID, goalID)
	if err != nil {
		return models.HabitGoal{}, err
	}

	goal.Active = false
	if goal.StartDate.IsZero() || !today.Before(goal.StartDate) {
		endDate := today
		goal.EndDate = &endDate
	}

	if err := service.goals.Save(&goal); err != nil {
		return models.HabitGoal{}, err
	}
	return goal, nil
}

// Delete soft-deletes (deactivates) a goal that already has check-in
// history and hard-deletes one that does not, returning the outcome message.
func (service *HabitGoalService) Delete(userID uint, goalID uint) (string, error) {
	goal, err := service.goals.FindOwned(userID, goalID)
	if err != nil {
		return "", err
	}

	hasCheckins, err := service.goals.HasCheckins(goal.ID)
	if err != nil {
		return "", err
	}

	if hasCheckins {
		goal.Active = false
		if err := service.goals.Save(&goal); err != nil {
			return "", err
		}
		return MsgGoalDeactivated, nil
	}

	if err := service.goals.Delete(goal.ID); err != nil {
		return "", err
	}
	return MsgGoalDeleted, nil
}

func validateGoalFields(goal models.HabitGoal) error {
	if goal.Title == "" {
		return NewFieldError("titulo", msgTitleRequired)
	}
	if !models.IsValidModality(goal.Modality) {
		return NewFieldError("modalidade", msgInvalidModality)
	}
	if !goal.StartDate.IsZero() && goal.EndDate != nil && goal.EndDate.Before(goal.StartDate) {
		return NewFieldError("data_fim", msgEndBeforeStart)
	}
	if !goal.HasTarget() {
		return NewValidationError(msgNoTarget)
	}
	return nil
}
