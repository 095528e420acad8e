package services

import (
	"time"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
)

const (
	msgInvalidModality      = "Modalidade inválida. Use corrida, ciclismo ou musculacao."
	msgNegativeDuration     = "A duração não pode ser negativa."
	msgNegativeCalories     = "As calorias não podem ser negativas."
	msgSessionHasDependents = "Não é possível excluir a sessão pois existem dados associados " +
		"(métricas, séries ou marcações de hábito). " +
		"Remova ou ajuste esses dados antes de excluir a sessão."

	MsgSessionDeleted = "Sessão excluída com sucesso."
)

type SessionService struct {
	sessions *db.SessionRepository
}

func NewSessionService(sessions *db.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

type SessionInput struct {
	Modality    string
	StartedAt   time.Time
	DurationSec *int
	Calories    *int
	Notes       *string
}

type SessionPatch struct {
	Modality    *string
	StartedAt   *time.Time
	DurationSec *int
	Calories    *int
	Notes       *string
}

func (service *SessionService) List(userID uint, filter db.SessionFilter) ([]models.ActivitySession, error) {
	return service.sessions.ListByUser(userID, filter)
}

func (service *SessionService) Get(userID uint, sessionID uint) (models.ActivitySession, error) {
	return service.sessions.FindOwned(userID, sessionID)
}

func (service *SessionService) Create(userID uint, input SessionInput) (models.ActivitySession, error) {
	session := models.ActivitySession{
		UserID:      userID,
		Modality:    input.Modality,
		StartedAt:   input.StartedAt,
		DurationSec: input.DurationSec,
		Calories:    input.Calories,
		Notes:       input.Notes,
	}
	if err := validateSessionFields(session); err != nil {
		return models.ActivitySession{}, err
	}

	if err := service.sessions.Create(&session); err != nil {
		return models.ActivitySession{}, err
	}
	return session, nil
}

func (service *SessionService) Update(userID uint, sessionID uint, patch SessionPatch) (models.ActivitySession, error) {
	session, err := service.sessions.FindOwned(userID, sessionID)
	if err != nil {
		return models.ActivitySession{}, err
	}

	if patch.Modality != nil {
		session.Modality = *patch.Modality
	}
	if patch.StartedAt != nil {
		session.StartedAt = *patch.StartedAt
	}
	if patch.DurationSec != nil {
		session.DurationSec = patch.DurationSec
	}
	if patch.Calories != nil {
		session.Calories = patch.Calories
	}
	if patch.Notes != nil {
		session.Notes = patch.Notes
	}

	// Ownership cannot be reassigned through an update.
	session.UserID = userID

	if err := validateSessionFields(session); err != nil {
		return models.ActivitySession{}, err
	}
	if err := service.sessions.Save(&session); err != nil {
		return models.ActivitySession{}, err
	}
	return session, nil
}

// DeleteGuarded refuses to remove a session that still has metrics, strength
// sets or habit check-ins attached; the caller must clear those first.
func (service *SessionService) DeleteGuarded(userID uint, sessionID uint) (string, error) {
	session, err := service.sessions.FindOwned(userID, sessionID)
	if err != nil {
		return "", err
	}

	dependents, err := service.sessions.LoadDependents(session.ID)
	if err != nil {
		return "", err
	}
	if dependents.Any() {
		return "", NewValidationError(msgSessionHasDependents)
	}

	if err := service.sessions.Delete(session.ID); err != nil {
		return "", err
	}
	return MsgSessionDeleted, nil
}

func validateSessionFields(session models.ActivitySession) error {
	if !models.IsValidModality(session.Modality) {
		return NewFieldError("modalidade", msgInvalidModality)
	}
	if session.DurationSec != nil && *session.DurationSec < 0 {
		return NewFieldError("duracao_seg", msgNegativeDuration)
	}
	if session.Calories != nil && *session.Calories < 0 {
		return NewFieldError("calorias", msgNegativeCalories)
	}
	return nil
}
