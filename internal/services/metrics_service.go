package services

import (
	"errors"

	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

const (
	msgInvalidSession        = "Sessão inválida."
	msgMetricsForeignSession = "Você não pode registrar métricas para sessões de outro usuário."
	msgSessionNotRunning     = "A sessão associada deve ser de modalidade corrida."
	msgSessionNotCycling     = "A sessão associada deve ser de modalidade ciclismo."
	msgMetricsAlreadyExist   = "Já existem métricas registradas para essa sessão."
)

// MetricsService guards the one-to-one running/cycling metrics attached to a
// session: the session must belong to the acting user and carry the matching
// modality.
type MetricsService struct {
	sessions *db.SessionRepository
	running  *db.RunningMetricsRepository
	cycling  *db.CyclingMetricsRepository
}

func NewMetricsService(sessions *db.SessionRepository, running *db.RunningMetricsRepository, cycling *db.CyclingMetricsRepository) *MetricsService {
	return &MetricsService{sessions: sessions, running: running, cycling: cycling}
}

type RunningMetricsInput struct {
	SessionID       uint
	DistanceKm      float64
	AvgPaceSecPerKm int
	AvgHeartRate    *int
}

type RunningMetricsPatch struct {
	DistanceKm      *float64
	AvgPaceSecPerKm *int
	AvgHeartRate    *int
}

type CyclingMetricsInput struct {
	SessionID    uint
	DistanceKm   float64
	AvgSpeedKmh  float64
	AvgHeartRate *int
}

type CyclingMetricsPatch struct {
	DistanceKm   *float64
	AvgSpeedKmh  *float64
	AvgHeartRate *int
}

// validateMetricsSession is the cross-resource guard shared by both metric
// types. A foreign-owned session is reported as a field error, not a 404,
// matching how every other cross-user reference is surfaced.
func (service *MetricsService) validateMetricsSession(userID uint, sessionID uint, expectedModality string, modalityMessage string) error {
	session, err := service.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewFieldError("sessao", msgInvalidSession)
		}
		return err
	}
	if session.UserID != userID {
		return NewFieldError("sessao", msgMetricsForeignSession)
	}
	if session.Modality != expectedModality {
		return NewFieldError("sessao", modalityMessage)
	}
	return nil
}

func (service *MetricsService) ListRunning(userID uint) ([]models.RunningMetrics, error) {
	return service.running.ListByOwner(userID)
}

func (service *MetricsService) GetRunning(userID uint, sessionID uint) (models.RunningMetrics, error) {
	return service.running.FindOwned(userID, sessionID)
}

func (service *MetricsService) CreateRunning(userID uint, input RunningMetricsInput) (models.RunningMetrics, error) {
	if err := service.validateMetricsSession(userID, input.SessionID, models.ModalityRunning, msgSessionNotRunning); err != nil {
		return models.RunningMetrics{}, err
	}

	exists, err := service.running.Exists(input.SessionID)
	if err != nil {
		return models.RunningMetrics{}, err
	}
	if exists {
		return models.RunningMetrics{}, NewFieldError("sessao", msgMetricsAlreadyExist)
	}

	metrics := models.RunningMetrics{
		SessionID:       input.SessionID,
		DistanceKm:      input.DistanceKm,
		AvgPaceSecPerKm: input.AvgPaceSecPerKm,
		AvgHeartRate:    input.AvgHeartRate,
	}
	if err := service.running.Create(&metrics); err != nil {
		return models.RunningMetrics{}, err
	}
	return metrics, nil
}

func (service *MetricsService) UpdateRunning(userID uint, sessionID uint, patch RunningMetricsPatch) (models.RunningMetrics, error) {
	metrics, err := service.running.FindOwned(userID, sessionID)
	if err != nil {
		return models.RunningMetrics{}, err
	}
	if err := service.validateMetricsSession(userID, metrics.SessionID, models.ModalityRunning, msgSessionNotRunning); err != nil {
		return models.RunningMetrics{}, err
	}

	if patch.DistanceKm != nil {
		metrics.DistanceKm = *patch.DistanceKm
	}
	if patch.AvgPaceSecPerKm != nil {
		metrics.AvgPaceSecPerKm = *patch.AvgPaceSecPerKm
	}
	if patch.AvgHeartRate != nil {
		metrics.AvgHeartRate = patch.AvgHeartRate
	}

	if err := service.running.Save(&metrics); err != nil {
		return models.RunningMetrics{}, err
	}
	return metrics, nil
}

func (service *MetricsService) DeleteRunning(userID uint, sessionID uint) error {
	metrics, err := service.running.FindOwned(userID, sessionID)
	if err != nil {
		return err
	}
	return service.running.Delete(metrics.SessionID)
}

func (service *MetricsService) ListCycling(userID uint) ([]models.CyclingMetrics, error) {
	return service.cycling.ListByOwner(userID)
}

func (service *MetricsService) GetCycling(userID uint, sessionID uint) (models.CyclingMetrics, error) {
	return service.cycling.FindOwned(userID, sessionID)
}

func (service *MetricsService) CreateCycling(userID uint, input CyclingMetricsInput) (models.CyclingMetrics, error) {
	if err := service.validateMetricsSession(userID, input.SessionID, models.ModalityCycling, msgSessionNotCycling); err != nil {
		return models.CyclingMetrics{}, err
	}

	exists, err := service.cycling.Exists(input.SessionID)
	if err != nil {
		return models.CyclingMetrics{}, err
	}
	if exists {
		return models.CyclingMetrics{}, NewFieldError("sessao", msgMetricsAlreadyExist)
	}

	metrics := models.CyclingMetrics{
		SessionID:    input.SessionID,
		DistanceKm:   input.DistanceKm,
		AvgSpeedKmh:  input.AvgSpeedKmh,
		AvgHeartRate: input.AvgHeartRate,
	}
	if err := service.cycling.Create(&metrics); err != nil {
		return models.CyclingMetrics{}, err
	}
	return metrics, nil
}

func (service *MetricsService) UpdateCycling(userID uint, sessionID uint, patch CyclingMetricsPatch) (models.CyclingMetrics, error) {
	metrics, err := service.cycling.FindOwned(userID, sessionID)
	if err != nil {
		return models.CyclingMetrics{}, err
	}
	if err := service.validateMetricsSession(userID, metrics.SessionID, models.ModalityCycling, msgSessionNotCycling); err != nil {
		return models.CyclingMetrics{}, err
	}

	if patch.DistanceKm != nil {
		metrics.DistanceKm = *patch.DistanceKm
	}
	if patch.AvgSpeedKmh != nil {
		metrics.AvgSpeedKmh = *patch.AvgSpeedKmh
	}
	if patch.AvgHeartRate != nil {
		metrics.AvgHeartRate = patch.AvgHeartRate
	}

	if err := service.cycling.Save(&metrics); err != nil {
		return models.CyclingMetrics{}, err
	}
	return metrics, nil
}

func (service *MetricsService) DeleteCycling(userID uint, sessionID uint) error {
	metrics, err := service.cycling.FindOwned(userID, sessionID)
	if err != nil {
		return err
	}
	return service.cycling.Delete(metrics.SessionID)
}
