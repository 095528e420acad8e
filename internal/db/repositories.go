package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Exercises      *ExerciseRepository
	Sessions       *SessionRepository
	RunningMetrics *RunningMetricsRepository
	CyclingMetrics *CyclingMetricsRepository
	StrengthSets   *StrengthSetRepository
	HabitGoals     *HabitGoalRepository
	HabitCheckins  *HabitCheckinRepository
	Dashboard      *DashboardRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Exercises:      NewExerciseRepository(database),
		Sessions:       NewSessionRepository(database),
		RunningMetrics: NewRunningMetricsRepository(database),
		CyclingMetrics: NewCyclingMetricsRepository(database),
		StrengthSets:   NewStrengthSetRepository(database),
		HabitGoals:     NewHabitGoalRepository(database),
		HabitCheckins:  NewHabitCheckinRepository(database),
		Dashboard:      NewDashboardRepository(database),
	}
}
