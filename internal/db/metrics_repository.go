package db

import (
	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

// Metrics rows are keyed by session id, so ownership is always resolved
// through a join with activity_sessions.

type RunningMetricsRepository struct {
	database *gorm.DB
}

func NewRunningMetricsRepository(database *gorm.DB) *RunningMetricsRepository {
	return &RunningMetricsRepository{database: database}
}

func (repo *RunningMetricsRepository) ListByOwner(userID uint) ([]models.RunningMetrics, error) {
	metrics := make([]models.RunningMetrics, 0)
	if err := repo.database.Model(&models.RunningMetrics{}).
		Joins("JOIN activity_sessions ON activity_sessions.id = running_metrics.session_id").
		Where("activity_sessions.user_id = ?", userID).
		Order("running_metrics.session_id ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *RunningMetricsRepository) FindOwned(userID uint, sessionID uint) (models.RunningMetrics, error) {
	var metrics models.RunningMetrics
	if err := repo.database.Model(&models.RunningMetrics{}).
		Joins("JOIN activity_sessions ON activity_sessions.id = running_metrics.session_id").
		Where("running_metrics.session_id = ? AND activity_sessions.user_id = ?", sessionID, userID).
		First(&metrics).Error; err != nil {
		return models.RunningMetrics{}, err
	}
	return metrics, nil
}

func (repo *RunningMetricsRepository) Exists(sessionID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.RunningMetrics{}).
		Where("session_id = ?", sessionID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *RunningMetricsRepository) Create(metrics *models.RunningMetrics) error {
	return repo.database.Create(metrics).Error
}

func (repo *RunningMetricsRepository) Save(metrics *models.RunningMetrics) error {
	return repo.database.Save(metrics).Error
}

func (repo *RunningMetricsRepository) Delete(sessionID uint) error {
	return repo.database.Where("session_id = ?", sessionID).Delete(&models.RunningMetrics{}).Error
}

type CyclingMetricsRepository struct {
	database *gorm.DB
}

func NewCyclingMetricsRepository(database *gorm.DB) *CyclingMetricsRepository {
	return &CyclingMetricsRepository{database: database}
}

func (repo *CyclingMetricsRepository) ListByOwner(userID uint) ([]models.CyclingMetrics, error) {
	metrics := make([]models.CyclingMetrics, 0)
	if err := repo.database.Model(&models.CyclingMetrics{}).
		Joins("JOIN activity_sessions ON activity_sessions.id = cycling_metrics.session_id").
		Where("activity_sessions.user_id = ?", userID).
		Order("cycling_metrics.session_id ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *CyclingMetricsRepository) FindOwned(userID uint, sessionID uint) (models.CyclingMetrics, error) {
	var metrics models.CyclingMetrics
	if err := repo.database.Model(&models.CyclingMetrics{}).
		Joins("JOIN activity_sessions ON activity_sessions.id = cycling_metrics.session_id").
		Where("cycling_metrics.session_id = ? AND activity_sessions.user_id = ?", sessionID, userID).
		First(&metrics).Error; err != nil {
		return models.CyclingMetrics{}, err
	}
	return metrics, nil
}

func (repo *CyclingMetricsRepository) Exists(sessionID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CyclingMetrics{}).
		Where("session_id = ?", sessionID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CyclingMetricsRepository) Create(metrics *models.CyclingMetrics) error {
	return repo.database.Create(metrics).Error
}

func (repo *CyclingMetricsRepository) Save(metrics *models.CyclingMetrics) error {
	return repo.database.Save(metrics).Error
}

func (repo *CyclingMetricsRepository) Delete(sessionID uint) error {
	return repo.database.Where("session_id = ?", sessionID).Delete(&models.CyclingMetrics{}).Error
}
