package db

import (
	"time"

	"github.com/ritmofit/ritmo/internal/models"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	database *gorm.DB
}

func NewDashboardRepository(database *gorm.DB) *DashboardRepository {
	return &DashboardRepository{database: database}
}

type OverallTotals struct {
	Sessions    int64
	DurationSec int64
	Calories    int64
}

type RunningTotals struct {
	Sessions   int64
	DistanceKm float64
	AvgPace    float64
}

type CyclingTotals struct {
	Sessions    int64
	DistanceKm  float64
	AvgSpeedKmh float64
}

type StrengthTotals struct {
	Sessions int64
	Sets     int64
}

func (repo *DashboardRepository) OverallTotals(userID uint, since time.Time) (OverallTotals, error) {
	var totals OverallTotals
	err := repo.database.Model(&models.ActivitySession{}).
		Select("COUNT(id) AS sessions, COALESCE(SUM(duration_sec), 0) AS duration_sec, COALESCE(SUM(calories), 0) AS calories").
		Where("user_id = ? AND started_at >= ?", userID, since).
		Scan(&totals).Error
	return totals, err
}

func (repo *DashboardRepository) RunningTotals(userID uint, since time.Time) (RunningTotals, error) {
	var totals RunningTotals
	err := repo.database.Model(&models.ActivitySession{}).
		Select("COUNT(activity_sessions.id) AS sessions, "+
			"COALESCE(SUM(running_metrics.distance_km), 0) AS distance_km, "+
			"COALESCE(AVG(running_metrics.avg_pace_sec_per_km), 0) AS avg_pace").
		Joins("LEFT JOIN running_metrics ON running_metrics.session_id = activity_sessions.id").
		Where("activity_sessions.user_id = ? AND activity_sessions.started_at >= ? AND activity_sessions.modality = ?",
			userID, since, models.ModalityRunning).
		Scan(&totals).Error
	return totals, err
}

func (repo *DashboardRepository) CyclingTotals(userID uint, since time.Time) (CyclingTotals, error) {
	var totals CyclingTotals
	err := repo.database.Model(&models.ActivitySession{}).
		Select("COUNT(activity_sessions.id) AS sessions, "+
			"COALESCE(SUM(cycling_metrics.distance_km), 0) AS distance_km, "+
			"COALESCE(AVG(cycling_metrics.avg_speed_kmh), 0) AS avg_speed_kmh").
		Joins("LEFT JOIN cycling_metrics ON cycling_metrics.session_id = activity_sessions.id").
		Where("activity_sessions.user_id = ? AND activity_sessions.started_at >= ? AND activity_sessions.modality = ?",
			userID, since, models.ModalityCycling).
		Scan(&totals).Error
	return totals, err
}

func (repo *DashboardRepository) StrengthTotals(userID uint, since time.Time) (StrengthTotals, error) {
	var totals StrengthTotals
	err := repo.database.Model(&models.ActivitySession{}).
		Select("COUNT(DISTINCT activity_sessions.id) AS sessions, COUNT(strength_sets.id) AS sets").
		Joins("LEFT JOIN strength_sets ON strength_sets.session_id = activity_sessions.id").
		Where("activity_sessions.user_id = ? AND activity_sessions.started_at >= ? AND activity_sessions.modality = ?",
			userID, since, models.ModalityStrength).
		Scan(&totals).Error
	return totals, err
}
