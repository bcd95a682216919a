package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	bookSlotHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/cancel_booking"
	findNextSlotHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/find_next_available_slot"
	isSlotAvailableHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/is_slot_available"
	listBookingsHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/list_bookings"
	releaseSlotHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/release_slot"
	daySlotsHandler "github.com/Agentronic/booking-agent-v2/internal/api/handlers/slots_available_on_day"
	"github.com/Agentronic/booking-agent-v2/internal/api/middleware"
	"github.com/Agentronic/booking-agent-v2/internal/config"
	bookingRepo "github.com/Agentronic/booking-agent-v2/internal/infra/storage/booking"
	availabilityService "github.com/Agentronic/booking-agent-v2/internal/service/availability"
	bookingsService "github.com/Agentronic/booking-agent-v2/internal/service/bookings"
	maintenanceService "github.com/Agentronic/booking-agent-v2/internal/service/maintenance"
	bookSlotUC "github.com/Agentronic/booking-agent-v2/internal/usecase/book_slot"
	findNextSlotUC "github.com/Agentronic/booking-agent-v2/internal/usecase/find_next_slot"
	getDaySlotsUC "github.com/Agentronic/booking-agent-v2/internal/usecase/get_day_slots"
	"github.com/Agentronic/booking-agent-v2/pkg/logger"
	"github.com/Agentronic/booking-agent-v2/pkg/metrics"
	"github.com/Agentronic/booking-agent-v2/pkg/txmanager"
)

func main() {
	// .env нужен только для локальной разработки, его отсутствие не ошибка
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting slot-calendar booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и схему
	bookingRepository := bookingRepo.NewRepository(db)
	if err := bookingRepository.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure database schema: %v", err)
	}
	log.Info("Database schema is up to date")

	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	checker := availabilityService.NewChecker(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(bookingRepository, checker, txManager, log)
	findNextSlotUseCase := findNextSlotUC.NewUseCase(checker, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(checker, log)

	// Инициализируем handlers
	isSlotAvailable := isSlotAvailableHandler.NewHandler(checker, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	releaseSlot := releaseSlotHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	daySlots := daySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Tool-интерфейс: каждый tool — отдельный POST endpoint с плоским
	// JSON-телом и фиксированным конвертом ответа
	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/is_slot_available", isSlotAvailable.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/book_slot", bookSlot.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/release_slot", releaseSlot.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/cancel_booking", cancelBooking.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/find_next_available_slot", findNextSlot.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/slots_available_on_day", daySlots.Handle).Methods(http.MethodPost)

	// Список бронирований за день
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// CORS для браузерных клиентов
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	// Фоновая очистка устаревших бронирований
	var cronRunner *cron.Cron
	if cfg.Maintenance.Enabled {
		maintenanceSvc := maintenanceService.NewService(bookingRepository, cfg.Maintenance.RetentionDays, log)

		cronRunner = cron.New()
		_, err := cronRunner.AddFunc(cfg.Maintenance.Schedule, func() {
			if err := maintenanceSvc.PurgeExpired(context.Background()); err != nil {
				log.Error("Maintenance run failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule maintenance job: %v", err)
		}
		cronRunner.Start()
		log.Info("Maintenance job scheduled (%q, retention %d days)",
			cfg.Maintenance.Schedule, cfg.Maintenance.RetentionDays)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cronRunner != nil {
		cronCtx := cronRunner.Stop()
		<-cronCtx.Done()
		log.Info("Maintenance job stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
