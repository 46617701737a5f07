package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workwhisperer/timekeeper-backend-go/internal/config"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/middleware"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService        jwt.Service // nil when auth is disabled
	AuthHandler       AuthHandler
	ShiftHandler      ShiftHandler
	AttendanceHandler AttendanceHandler
	NoteHandler       NoteHandler
	SettingsHandler   SettingsHandler
	WorkShiftHandler  WorkShiftHandler
}

func NewRouter(cfg *config.Config, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeper"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", deps.AuthHandler.IssueToken)
		})

		// Requires authentication when an access PIN is configured
		r.Group(func(r chi.Router) {
			if deps.JWTService != nil {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			}

			r.Route("/shift", func(r chi.Router) {
				r.Get("/", deps.ShiftHandler.Get)
				r.Post("/advance", deps.ShiftHandler.Advance)
				r.Post("/reset", deps.ShiftHandler.Reset)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/week", deps.AttendanceHandler.GetWeek)
				r.Route("/week/{date}", func(r chi.Router) {
					r.Get("/", deps.AttendanceHandler.GetDayDetail)
					r.Put("/status", deps.AttendanceHandler.UpdateStatus)
				})
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", deps.NoteHandler.List)
				r.Post("/", deps.NoteHandler.Create)
				r.Put("/{id}", deps.NoteHandler.Update)
				r.Delete("/{id}", deps.NoteHandler.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", deps.SettingsHandler.Get)
				r.Put("/", deps.SettingsHandler.Update)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.WorkShiftHandler.List)
				r.Post("/", deps.WorkShiftHandler.Create)
				r.Put("/{id}", deps.WorkShiftHandler.Update)
				r.Delete("/{id}", deps.WorkShiftHandler.Delete)
				r.Post("/{id}/activate", deps.WorkShiftHandler.SetActive)
			})
		})
	})
	return r
}
