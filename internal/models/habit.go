package models

import "time"

type HabitGoal struct {
	ID                uint       `gorm:"primaryKey"`
	UserID            uint       `gorm:"not null;index"`
	Title             string     `gorm:"size:120;not null"`
	Modality          string     `gorm:"size:20;not null"`
	StartDate         time.Time  `gorm:"type:date;not null"`
	EndDate           *time.Time `gorm:"type:date"`
	WeeklyFrequency   *int
	DistanceTargetKm  *float64
	DurationTargetMin *int
	SessionTarget     *int
	Active            bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time `gorm:"not null"`
}

// HasTarget reports whether at least one of the four target fields is set.
func (goal HabitGoal) HasTarget() bool {
	return goal.WeeklyFrequency != nil ||
		goal.DistanceTargetKm != nil ||
		goal.DurationTargetMin != nil ||
		goal.SessionTarget != nil
}

type HabitCheckin struct {
	ID        uint      `gorm:"primaryKey"`
	GoalID    uint      `gorm:"not null;uniqueIndex:uidx_goal_date"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_goal_date"`
	SessionID *uint
	Completed bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}
