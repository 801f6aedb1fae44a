package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffclock/attendance-backend-go/internal/config"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffclock/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	appConfig config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	timeLogHandler TimeLogHandler,
	dashboardHandler DashboardHandler,
	settingsHandler SettingsHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timelogs", func(r chi.Router) {
				r.Post("/", timeLogHandler.Create)
				r.Get("/status", timeLogHandler.Status)
			})

			r.Get("/data/employee/{userId}", dashboardHandler.GetEmployeeData)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/data/all", dashboardHandler.GetAllData)

				r.Route("/users/{userId}", func(r chi.Router) {
					r.Put("/", userHandler.Update)
					r.Delete("/", userHandler.Delete)
				})

				r.Put("/admin/password", userHandler.ChangePassword)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/geo", settingsHandler.GetGeo)
					r.Put("/geo", settingsHandler.UpdateGeo)
					r.Put("/shifts", settingsHandler.UpdateShiftGracePeriods)
				})

				r.Get("/reports/monthly", reportHandler.Monthly)
			})
		})
	})
	return r
}
