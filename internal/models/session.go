package models

import "time"

// Modality values are part of the wire contract and match the product's
// Portuguese vocabulary.
const (
	ModalityRunning  = "corrida"
	ModalityCycling  = "ciclismo"
	ModalityStrength = "musculacao"
)

func IsValidModality(modality string) bool {
	switch modality {
	case ModalityRunning, ModalityCycling, ModalityStrength:
		return true
	default:
		return false
	}
}

type ActivitySession struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_sessions_user_time"`
	Modality    string    `gorm:"size:20;not null;index"`
	StartedAt   time.Time `gorm:"not null;index:idx_sessions_user_time"`
	DurationSec *int
	Calories    *int
	Notes       *string
	CreatedAt   time.Time `gorm:"not null"`
}

// RunningMetrics is keyed by its session: at most one row per running session.
type RunningMetrics struct {
	SessionID       uint    `gorm:"primaryKey;autoIncrement:false"`
	DistanceKm      float64 `gorm:"not null"`
	AvgPaceSecPerKm int     `gorm:"not null"`
	AvgHeartRate    *int
}

type CyclingMetrics struct {
	SessionID    uint    `gorm:"primaryKey;autoIncrement:false"`
	DistanceKm   float64 `gorm:"not null"`
	AvgSpeedKmh  float64 `gorm:"not null"`
	AvgHeartRate *int
}
