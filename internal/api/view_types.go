package api

import (
	"time"

	"github.com/ritmofit/ritmo/internal/models"
)

// The view types pin the JSON wire format. Field names follow the
// product's Portuguese vocabulary; date-only fields serialize as
// AAAA-MM-DD strings.

const dateLayout = "2006-01-02"

type userView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"criado_em"`
}

func newUserView(user models.User) userView {
	return userView{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
}

func newUserViews(users []models.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}
	return views
}

type exerciseView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"nome"`
	MuscleGroup *string `json:"grupo_muscular"`
	Equipment   *string `json:"equipamento"`
}

func newExerciseView(exercise models.Exercise) exerciseView {
	return exerciseView{
		ID:          exercise.ID,
		Name:        exercise.Name,
		MuscleGroup: exercise.MuscleGroup,
		Equipment:   exercise.Equipment,
	}
}

func newExerciseViews(exercises []models.Exercise) []exerciseView {
	views := make([]exerciseView, 0, len(exercises))
	for _, exercise := range exercises {
		views = append(views, newExerciseView(exercise))
	}
	return views
}

type sessionView struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"usuario"`
	Modality    string    `json:"modalidade"`
	StartedAt   time.Time `json:"inicio_em"`
	DurationSec *int      `json:"duracao_seg"`
	Calories    *int      `json:"calorias"`
	Notes       *string   `json:"observacoes"`
	CreatedAt   time.Time `json:"criado_em"`
}

func newSessionView(session models.ActivitySession) sessionView {
	return sessionView{
		ID:          session.ID,
		UserID:      session.UserID,
		Modality:    session.Modality,
		StartedAt:   session.StartedAt,
		DurationSec: session.DurationSec,
		Calories:    session.Calories,
		Notes:       session.Notes,
		CreatedAt:   session.CreatedAt,
	}
}

func newSessionViews(sessions []models.ActivitySession) []sessionView {
	views := make([]sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, newSessionView(session))
	}
	return views
}

type runningMetricsView struct {
	SessionID       uint    `json:"sessao"`
	DistanceKm      float64 `json:"distancia_km"`
	AvgPaceSecPerKm int     `json:"ritmo_medio_seg_km"`
	AvgHeartRate    *int    `json:"fc_media"`
}

func newRunningMetricsView(metrics models.RunningMetrics) runningMetricsView {
	return runningMetricsView{
		SessionID:       metrics.SessionID,
		DistanceKm:      metrics.DistanceKm,
		AvgPaceSecPerKm: metrics.AvgPaceSecPerKm,
		AvgHeartRate:    metrics.AvgHeartRate,
	}
}

func newRunningMetricsViews(rows []models.RunningMetrics) []runningMetricsView {
	views := make([]runningMetricsView, 0, len(rows))
	for _, row := range rows {
		views = append(views, newRunningMetricsView(row))
	}
	return views
}

type cyclingMetricsView struct {
	SessionID    uint    `json:"sessao"`
	DistanceKm   float64 `json:"distancia_km"`
	AvgSpeedKmh  float64 `json:"velocidade_media_kmh"`
	AvgHeartRate *int    `json:"fc_media"`
}

func newCyclingMetricsView(metrics models.CyclingMetrics) cyclingMetricsView {
	return cyclingMetricsView{
		SessionID:    metrics.SessionID,
		DistanceKm:   metrics.DistanceKm,
		AvgSpeedKmh:  metrics.AvgSpeedKmh,
		AvgHeartRate: metrics.AvgHeartRate,
	}
}

func newCyclingMetricsViews(rows []models.CyclingMetrics) []cyclingMetricsView {
	views := make([]cyclingMetricsView, 0, len(rows))
	for _, row := range rows {
		views = append(views, newCyclingMetricsView(row))
	}
	return views
}

type strengthSetView struct {
	ID         uint     `json:"id"`
	SessionID  uint     `json:"sessao"`
	ExerciseID uint     `json:"exercicio"`
	Position   int      `json:"ordem_serie"`
	Reps       *int     `json:"repeticoes"`
	LoadKg     *float64 `json:"carga_kg"`
}

func newStrengthSetView(set models.StrengthSet) strengthSetView {
	return strengthSetView{
		ID:         set.ID,
		SessionID:  set.SessionID,
		ExerciseID: set.ExerciseID,
		Position:   set.Position,
		Reps:       set.Reps,
		LoadKg:     set.LoadKg,
	}
}

func newStrengthSetViews(sets []models.StrengthSet) []strengthSetView {
	views := make([]strengthSetView, 0, len(sets))
	for _, set := range sets {
		views = append(views, newStrengthSetView(set))
	}
	return views
}

type habitGoalView struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"usuario"`
	Title             string    `json:"titulo"`
	Modality          string    `json:"modalidade"`
	StartDate         string    `json:"data_inicio"`
	EndDate           *string   `json:"data_fim"`
	WeeklyFrequency   *int      `json:"frequencia_semana"`
	DistanceTargetKm  *float64  `json:"distancia_meta_km"`
	DurationTargetMin *int      `json:"duracao_meta_min"`
	SessionTarget     *int      `json:"sessoes_meta"`
	Active            bool      `json:"ativo"`
	CreatedAt         time.Time `json:"criado_em"`
}

func newHabitGoalView(goal models.HabitGoal) habitGoalView {
	return habitGoalView{
		ID:                goal.ID,
		UserID:            goal.UserID,
		Title:             goal.Title,
		Modality:          goal.Modality,
		StartDate:         goal.StartDate.Format(dateLayout),
		EndDate:           formatDatePtr(goal.EndDate),
		WeeklyFrequency:   goal.WeeklyFrequency,
		DistanceTargetKm:  goal.DistanceTargetKm,
		DurationTargetMin: goal.DurationTargetMin,
		SessionTarget:     goal.SessionTarget,
		Active:            goal.Active,
		CreatedAt:         goal.CreatedAt,
	}
}

func newHabitGoalViews(goals []models.HabitGoal) []habitGoalView {
	views := make([]habitGoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, newHabitGoalView(goal))
	}
	return views
}

type habitCheckinView struct {
	ID        uint      `json:"id"`
	GoalID    uint      `json:"meta"`
	UserID    uint      `json:"usuario"`
	Date      string    `json:"data"`
	SessionID *uint     `json:"sessao"`
	Completed bool      `json:"concluido"`
	CreatedAt time.Time `json:"criado_em"`
}

func newHabitCheckinView(checkin models.HabitCheckin) habitCheckinView {
	return habitCheckinView{
		ID:        checkin.ID,
		GoalID:    checkin.GoalID,
		UserID:    checkin.UserID,
		Date:      checkin.Date.Format(dateLayout),
		SessionID: checkin.SessionID,
		Completed: checkin.Completed,
		CreatedAt: checkin.CreatedAt,
	}
}

func newHabitCheckinViews(checkins []models.HabitCheckin) []habitCheckinView {
	views := make([]habitCheckinView, 0, len(checkins))
	for _, checkin := range checkins {
		views = append(views, newHabitCheckinView(checkin))
	}
	return views
}

func formatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
