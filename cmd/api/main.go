package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/config"
	appHTTP "github.com/staffclock/attendance-backend-go/internal/handler/http"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
	"github.com/staffclock/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffclock/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/staffclock/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/staffclock/attendance-backend-go/internal/service/dashboard"
	reportService "github.com/staffclock/attendance-backend-go/internal/service/report"
	settingsService "github.com/staffclock/attendance-backend-go/internal/service/settings"
	timelogService "github.com/staffclock/attendance-backend-go/internal/service/timelog"
	userService "github.com/staffclock/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Failed to ensure schema: ", err)
	}
	if err := postgresql.SeedDefaults(ctx, db, cfg.Auth.RecoveryPassword); err != nil {
		log.Fatal("Failed to seed defaults: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	geoSettingsRepo := postgresql.NewGeoSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, cfg.Auth)
	userSvc := userService.NewUserService(db, userRepo)
	timeLogSvc := timelogService.NewTimeLogService(db, timeLogRepo, userRepo, geoSettingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(db, userRepo, timeLogRepo, shiftRepo, geoSettingsRepo)
	settingsSvc := settingsService.NewSettingsService(db, geoSettingsRepo, shiftRepo)
	reportSvc := reportService.NewReportService(db, timeLogRepo, userRepo, shiftRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timeLogHandler := appHTTP.NewTimeLogHandler(timeLogSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		authHandler,
		userHandler,
		timeLogHandler,
		dashboardHandler,
		settingsHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
