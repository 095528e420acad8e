package services

import (
	"errors"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

const (
	msgSetForeignSession  = "Você não pode criar séries em sessões de outro usuário."
	msgSessionNotStrength = "A sessão associada deve ser de modalidade musculação."
	msgInvalidExercise    = "Exercício inválido."
	msgPositionBelowOne   = "A ordem da série deve ser um número inteiro maior ou igual a 1."
	msgPositionTaken      = "Já existe uma série com essa ordem nessa sessão."
)

type StrengthSetService struct {
	sets      *db.StrengthSetRepository
	sessions  *db.SessionRepository
	exercises *db.ExerciseRepository
}

func NewStrengthSetService(sets *db.StrengthSetRepository, sessions *db.SessionRepository, exercises *db.ExerciseRepository) *StrengthSetService {
	return &StrengthSetService{sets: sets, sessions: sessions, exercises: exercises}
}

type StrengthSetInput struct {
	SessionID  uint
	ExerciseID uint
	Position   *int
	Reps       *int
	LoadKg     *float64
}

type StrengthSetPatch struct {
	SessionID  *uint
	ExerciseID *uint
	Position   *int
	Reps       *int
	LoadKg     *float64
}

func (service *StrengthSetService) List(userID uint, filter db.StrengthSetFilter) ([]models.StrengthSet, error) {
	return service.sets.ListByOwner(userID, filter)
}

func (service *StrengthSetService) Get(userID uint, setID uint) (models.StrengthSet, error) {
	return service.sets.FindOwned(userID, setID)
}

func (service *StrengthSetService) Create(userID uint, input StrengthSetInput) (models.StrengthSet, error) {
	if err := service.validateSetSession(userID, input.SessionID); err != nil {
		return models.StrengthSet{}, err
	}
	if err := service.validateExercise(input.ExerciseID); err != nil {
		return models.StrengthSet{}, err
	}

	position, err := service.resolvePosition(input.SessionID, input.Position, 0)
	if err != nil {
		return models.StrengthSet{}, err
	}

	set := models.StrengthSet{
		SessionID:  input.SessionID,
		ExerciseID: input.ExerciseID,
		Position:   position,
		Reps:       input.Reps,
		LoadKg:     input.LoadKg,
	}
	if err := service.sets.Create(&set); err != nil {
		return models.StrengthSet{}, err
	}
	return set, nil
}

func (service *StrengthSetService) Update(userID uint, setID uint, patch StrengthSetPatch) (models.StrengthSet, error) {
	set, err := service.sets.FindOwned(userID, setID)
	if err != nil {
		return models.StrengthSet{}, err
	}

	if patch.SessionID != nil {
		if err := service.validateSetSession(userID, *patch.SessionID); err != nil {
			return models.StrengthSet{}, err
		}
		set.SessionID = *patch.SessionID
	}
	if patch.ExerciseID != nil {
		if err := service.validateExercise(*patch.ExerciseID); err != nil {
			return models.StrengthSet{}, err
		}
		set.ExerciseID = *patch.ExerciseID
	}

	requested := &set.Position
	if patch.Position != nil {
		requested = patch.Position
	}
	position, err := service.resolvePosition(set.SessionID, requested, set.ID)
	if err != nil {
		return models.StrengthSet{}, err
	}
	set.Position = position

	if patch.Reps != nil {
		set.Reps = patch.Reps
	}
	if patch.LoadKg != nil {
		set.LoadKg = patch.LoadKg
	}

	if err := service.sets.Save(&set); err != nil {
		return models.StrengthSet{}, err
	}
	return set, nil
}

// Delete removes the set and renumbers the session's survivors back to a
// contiguous 1..N sequence.
func (service *StrengthSetService) Delete(userID uint, setID uint) error {
	set, err := service.sets.FindOwned(userID, setID)
	if err != nil {
		return err
	}
	return service.sets.DeleteAndRenumber(set.ID, set.SessionID)
}

func (service *StrengthSetService) validateSetSession(userID uint, sessionID uint) error {
	session, err := service.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewFieldError("sessao", msgInvalidSession)
		}
		return err
	}
	if session.UserID != userID {
		return NewFieldError("sessao", msgSetForeignSession)
	}
	if session.Modality != models.ModalityStrength {
		return NewFieldError("sessao", msgSessionNotStrength)
	}
	return nil
}

func (service *StrengthSetService) validateExercise(exerciseID uint) error {
	if _, err := service.exercises.FindByID(exerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewFieldError("exercicio", msgInvalidExercise)
		}
		return err
	}
	return nil
}

// resolvePosition applies the ordinal rules: an omitted position gets
// max+1 within the session; an explicit one must be >= 1 and free. The
// storage unique index remains the backstop for concurrent writers.
func (service *StrengthSetService) resolvePosition(sessionID uint, requested *int, excludeSetID uint) (int, error) {
	if requested == nil {
		maxPosition, err := service.sets.MaxPosition(sessionID)
		if err != nil {
			return 0, err
		}
		return maxPosition + 1, nil
	}

	position := *requested
	if position < 1 {
		return 0, NewFieldError("ordem_serie", msgPositionBelowOne)
	}

	taken, err := service.sets.PositionTaken(sessionID, position, excludeSetID)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, NewFieldError("ordem_serie", msgPositionTaken)
	}
	return position, nil
}
