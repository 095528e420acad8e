package services

import (
	"time"

	"github.com/ritmofit/ritmo/internal/db"
)

const DefaultSummaryWindowDays = 30

// DashboardService aggregates a user's recent training into the summary
// payload served by /api/dashboard/resumo.
type DashboardService struct {
	dashboard *db.DashboardRepository
}

func NewDashboardService(dashboard *db.DashboardRepository) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

type RunningSummary struct {
	Sessions        int64   `json:"sessoes"`
	TotalDistanceKm float64 `json:"distancia_total_km"`
	AvgPaceSecPerKm float64 `json:"ritmo_medio"`
}

type CyclingSummary struct {
	Sessions        int64   `json:"sessoes"`
	TotalDistanceKm float64 `json:"distancia_total_km"`
	AvgSpeedKmh     float64 `json:"velocidade_media"`
}

type StrengthSummary struct {
	Sessions  int64 `json:"sessoes"`
	TotalSets int64 `json:"series_totais"`
}

type ModalitySummaries struct {
	Running  RunningSummary  `json:"corrida"`
	Cycling  CyclingSummary  `json:"ciclismo"`
	Strength StrengthSummary `json:"musculacao"`
}

type Summary struct {
	WindowDays       int               `json:"periodo_dias"`
	TotalSessions    int64             `json:"total_sessoes"`
	TotalDurationSec int64             `json:"duracao_total_segundos"`
	TotalCalories    int64             `json:"calorias_totais"`
	ByModality       ModalitySummaries `json:"por_modalidade"`
}

func (service *DashboardService) Summarize(userID uint, windowDays int, now time.Time) (Summary, error) {
	if windowDays < 1 {
		windowDays = DefaultSummaryWindowDays
	}
	since := now.AddDate(0, 0, -windowDays)

	overall, err := service.dashboard.OverallTotals(userID, since)
	if err != nil {
		return Summary{}, err
	}
	running, err := service.dashboard.RunningTotals(userID, since)
	if err != nil {
		return Summary{}, err
	}
	cycling, err := service.dashboard.CyclingTotals(userID, since)
	if err != nil {
		return Summary{}, err
	}
	strength, err := service.dashboard.StrengthTotals(userID, since)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		WindowDays:       windowDays,
		TotalSessions:    overall.Sessions,
		TotalDurationSec: overall.DurationSec,
		TotalCalories:    overall.Calories,
		ByModality: ModalitySummaries{
			Running: RunningSummary{
				Sessions:        running.Sessions,
				TotalDistanceKm: running.DistanceKm,
				AvgPaceSecPerKm: running.AvgPace,
			},
			Cycling: CyclingSummary{
				Sessions:        cycling.Sessions,
				TotalDistanceKm: cycling.DistanceKm,
				AvgSpeedKmh:     cycling.AvgSpeedKmh,
			},
			Strength: StrengthSummary{
				Sessions:  strength.Sessions,
				TotalSets: strength.Sets,
			},
		},
	}, nil
}
