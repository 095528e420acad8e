package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ritmofit/ritmo/internal/db"
	"github.com/ritmofit/ritmo/internal/metrics"
	"github.com/ritmofit/ritmo/internal/models"
	"github.com/ritmofit/ritmo/internal/services"
	"gorm.io/gorm"
)

const contextUserKey = "current_user"

type Handler struct {
	db       *gorm.DB
	location *time.Location

	repositories *db.Repositories

	tokenService     *services.TokenService
	authService      *services.AuthService
	exerciseService  *services.ExerciseService
	sessionService   *services.SessionService
	metricsService   *services.MetricsService
	setService       *services.StrengthSetService
	goalService      *services.HabitGoalService
	checkinService   *services.HabitCheckinService
	dashboardService *services.DashboardService

	registry     *prometheus.Registry
	collector    *metrics.Collector
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, jwtSecret []byte, accessTokenTTL time.Duration, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	registry := prometheus.NewRegistry()
	handler := &Handler{
		db:           database,
		location:     location,
		registry:     registry,
		collector:    metrics.NewCollector(registry),
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database, jwtSecret, accessTokenTTL)
}

func (handler *Handler) withDependencies(database *gorm.DB, jwtSecret []byte, accessTokenTTL time.Duration) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.tokenService = services.NewTokenService(handler.repositories.Users, jwtSecret, accessTokenTTL)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.exerciseService = services.NewExerciseService(handler.repositories.Exercises)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions)
	handler.metricsService = services.NewMetricsService(
		handler.repositories.Sessions,
		handler.repositories.RunningMetrics,
		handler.repositories.CyclingMetrics,
	)
	handler.setService = services.NewStrengthSetService(
		handler.repositories.StrengthSets,
		handler.repositories.Sessions,
		handler.repositories.Exercises,
	)
	handler.goalService = services.NewHabitGoalService(handler.repositories.HabitGoals)
	handler.checkinService = services.NewHabitCheckinService(
		handler.repositories.HabitCheckins,
		handler.repositories.HabitGoals,
		handler.repositories.Sessions,
	)
	handler.dashboardService = services.NewDashboardService(handler.repositories.Dashboard)
	return handler
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
