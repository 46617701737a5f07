package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workwhisperer/timekeeper-backend-go/internal/config"
	appHTTP "github.com/workwhisperer/timekeeper-backend-go/internal/handler/http"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	memoryStore "github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/memory"
	postgresStore "github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/postgres"
	redisStore "github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/redis"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/database"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/jwt"
	"github.com/workwhisperer/timekeeper-backend-go/internal/repository/kv"
	attendanceService "github.com/workwhisperer/timekeeper-backend-go/internal/service/attendance"
	authService "github.com/workwhisperer/timekeeper-backend-go/internal/service/auth"
	noteService "github.com/workwhisperer/timekeeper-backend-go/internal/service/note"
	settingsService "github.com/workwhisperer/timekeeper-backend-go/internal/service/settings"
	shiftService "github.com/workwhisperer/timekeeper-backend-go/internal/service/shift"
	workshiftService "github.com/workwhisperer/timekeeper-backend-go/internal/service/workshift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var store kvstore.Store
	switch cfg.Storage.Driver {
	case "memory":
		store = memoryStore.NewStore()
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		store, err = postgresStore.NewStore(db)
		if err != nil {
			log.Fatal("Failed to initialize postgres storage: ", err)
		}
	case "redis":
		store, err = redisStore.NewStore(cfg.Storage.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	cardRepo := kv.NewCardRepository(store)
	weekRepo := kv.NewWeekRepository(store)
	noteRepo := kv.NewNoteRepository(store)
	prefsRepo := kv.NewPreferencesRepository(store)
	workShiftRepo := kv.NewShiftRepository(store)

	clk := clock.System()

	prefsSvc := settingsService.NewPreferencesService(prefsRepo, cfg.App.DefaultLanguage)
	workShiftSvc := workshiftService.NewShiftService(workShiftRepo)
	noteSvc := noteService.NewNoteService(noteRepo, clk)
	weekSvc := attendanceService.NewWeekService(weekRepo, prefsSvc, clk)
	cardSvc := shiftService.NewCardService(cardRepo, workShiftSvc, prefsSvc, clk)

	var jwtSvc jwt.Service
	if cfg.Auth.Enabled() {
		jwtSvc = jwt.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpiration)
	}
	authSvc := authService.NewAuthService(cfg.Auth.PINHash, jwtSvc)

	router := appHTTP.NewRouter(cfg, appHTTP.RouterDeps{
		JWTService:        jwtSvc,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		ShiftHandler:      appHTTP.NewShiftHandler(cardSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(weekSvc, clk),
		NoteHandler:       appHTTP.NewNoteHandler(noteSvc),
		SettingsHandler:   appHTTP.NewSettingsHandler(prefsSvc),
		WorkShiftHandler:  appHTTP.NewWorkShiftHandler(workShiftSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
