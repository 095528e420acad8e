package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/ritmofit/ritmo/internal/metrics"
)

// RegisterRoutes wires the HTTP surface. Everything under /api and the
// account routes under /auth require a Bearer token; registration, login
// and token refresh are public.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(handler.registry)))

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.Refresh)

	// The account routes share the prefix with the public ones, so the auth
	// middleware is attached per route instead of on the group.
	requireAuth := []fiber.Handler{handler.Authenticate, handler.AuthRequired}
	auth.Get("/me", append(requireAuth, handler.Me)...)
	auth.Patch("/me", append(requireAuth, handler.UpdateMe)...)
	auth.Put("/me", append(requireAuth, handler.UpdateMe)...)
	auth.Delete("/me", append(requireAuth, handler.DeleteMe)...)
	auth.Patch("/change-password", append(requireAuth, handler.ChangePassword)...)

	api := app.Group("/api", handler.Authenticate, handler.AuthRequired)

	users := api.Group("/usuarios")
	users.Get("/", handler.ListUsers)
	users.Post("/", handler.CreateUser)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id", handler.UpdateUser)
	users.Patch("/:id", handler.UpdateUser)
	users.Delete("/:id", handler.DeleteUser)

	exercises := api.Group("/exercicios")
	exercises.Get("/", handler.ListExercises)
	exercises.Post("/", handler.CreateExercise)
	exercises.Get("/:id", handler.GetExercise)
	exercises.Put("/:id", handler.UpdateExercise)
	exercises.Patch("/:id", handler.UpdateExercise)
	exercises.Delete("/:id", handler.DeleteExercise)

	sessions := api.Group("/sessoes-atividade")
	sessions.Get("/", handler.ListSessions)
	sessions.Post("/", handler.CreateSession)
	sessions.Get("/:id", handler.GetSession)
	sessions.Put("/:id", handler.UpdateSession)
	sessions.Patch("/:id", handler.UpdateSession)
	sessions.Delete("/:id", handler.DeleteSession)

	running := api.Group("/metricas-corrida")
	running.Get("/", handler.ListRunningMetrics)
	running.Post("/", handler.CreateRunningMetrics)
	running.Get("/:id", handler.GetRunningMetrics)
	running.Put("/:id", handler.UpdateRunningMetrics)
	running.Patch("/:id", handler.UpdateRunningMetrics)
	running.Delete("/:id", handler.DeleteRunningMetrics)

	cycling := api.Group("/metricas-ciclismo")
	cycling.Get("/", handler.ListCyclingMetrics)
	cycling.Post("/", handler.CreateCyclingMetrics)
	cycling.Get("/:id", handler.GetCyclingMetrics)
	cycling.Put("/:id", handler.UpdateCyclingMetrics)
	cycling.Patch("/:id", handler.UpdateCyclingMetrics)
	cycling.Delete("/:id", handler.DeleteCyclingMetrics)

	sets := api.Group("/series-musculacao")
	sets.Get("/", handler.ListStrengthSets)
	sets.Post("/", handler.CreateStrengthSet)
	sets.Get("/:id", handler.GetStrengthSet)
	sets.Put("/:id", handler.UpdateStrengthSet)
	sets.Patch("/:id", handler.UpdateStrengthSet)
	sets.Delete("/:id", handler.DeleteStrengthSet)

	goals := api.Group("/metas-habito")
	goals.Get("/", handler.ListHabitGoals)
	goals.Post("/", handler.CreateHabitGoal)
	goals.Get("/:id", handler.GetHabitGoal)
	goals.Put("/:id", handler.UpdateHabitGoal)
	goals.Patch("/:id", handler.UpdateHabitGoal)
	goals.Patch("/:id/encerrar", handler.CloseHabitGoal)
	goals.Delete("/:id", handler.DeleteHabitGoal)

	checkins := api.Group("/marcacoes-habito")
	checkins.Get("/", handler.ListHabitCheckins)
	checkins.Post("/", handler.CreateHabitCheckin)
	checkins.Get("/:id", handler.GetHabitCheckin)
	checkins.Put("/:id", handler.UpdateHabitCheckin)
	checkins.Patch("/:id", handler.UpdateHabitCheckin)
	checkins.Delete("/:id", handler.DeleteHabitCheckin)

	api.Get("/dashboard/resumo", handler.DashboardSummary)
}
