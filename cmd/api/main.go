package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cleansweep-app/timeclock-backend-go/internal/config"
	appHTTP "github.com/cleansweep-app/timeclock-backend-go/internal/handler/http"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/cron"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/geocode"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/oauth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/sse"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/storage"
	"github.com/cleansweep-app/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/cleansweep-app/timeclock-backend-go/internal/service/auth"
	reportService "github.com/cleansweep-app/timeclock-backend-go/internal/service/report"
	shiftService "github.com/cleansweep-app/timeclock-backend-go/internal/service/shift"
	siteService "github.com/cleansweep-app/timeclock-backend-go/internal/service/site"
	timeLogService "github.com/cleansweep-app/timeclock-backend-go/internal/service/timelog"
	userService "github.com/cleansweep-app/timeclock-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	geocoder := geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent)
	hub := sse.NewHub()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtService, googleService)
	userSvc := userService.NewUserService(userRepo, fileStorage)
	siteSvc := siteService.NewSiteService(siteRepo, geocoder)
	shiftSvc := shiftService.NewShiftService(shiftRepo, siteRepo, userRepo)
	timeLogSvc := timeLogService.NewTimeLogService(db, shiftRepo, siteRepo, timeLogRepo, hub)
	reportSvc := reportService.NewReportService(timeLogRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	timeLogHandler := appHTTP.NewTimeLogHandler(timeLogSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventHandler := appHTTP.NewEventHandler(hub)

	scheduler := cron.NewScheduler()
	cron.NewTimeLogJobs(timeLogRepo, refreshTokenRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:             cfg.App.Env,
			FrontendURL:     cfg.App.FrontendURL,
			UploadsBasePath: cfg.Storage.BasePath,
		},
		jwtService,
		authHandler,
		userHandler,
		siteHandler,
		shiftHandler,
		timeLogHandler,
		reportHandler,
		eventHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
