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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/simplyseat/reservation-service/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/simplyseat/reservation-service/internal/api/handlers/check_slot"
	createBookingHandler "github.com/simplyseat/reservation-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/simplyseat/reservation-service/internal/api/handlers/get_booking"
	getDayAvailabilityHandler "github.com/simplyseat/reservation-service/internal/api/handlers/get_day_availability"
	getRangeAvailabilityHandler "github.com/simplyseat/reservation-service/internal/api/handlers/get_range_availability"
	getUserBookingsHandler "github.com/simplyseat/reservation-service/internal/api/handlers/get_user_bookings"
	getVenueBookingsHandler "github.com/simplyseat/reservation-service/internal/api/handlers/get_venue_bookings"
	listVenuesHandler "github.com/simplyseat/reservation-service/internal/api/handlers/list_venues"
	"github.com/simplyseat/reservation-service/internal/api/middleware"
	"github.com/simplyseat/reservation-service/internal/config"
	bookingRepo "github.com/simplyseat/reservation-service/internal/infra/storage/booking"
	catalogRepo "github.com/simplyseat/reservation-service/internal/infra/storage/catalog"
	ruleRepo "github.com/simplyseat/reservation-service/internal/infra/storage/rule"
	venueRepo "github.com/simplyseat/reservation-service/internal/infra/storage/venue"
	geocoderClient "github.com/simplyseat/reservation-service/internal/integrations/geocoder"
	availabilityService "github.com/simplyseat/reservation-service/internal/service/availability"
	bookingsService "github.com/simplyseat/reservation-service/internal/service/bookings"
	venuesService "github.com/simplyseat/reservation-service/internal/service/venues"
	createBookingUC "github.com/simplyseat/reservation-service/internal/usecase/create_booking"
	"github.com/simplyseat/reservation-service/pkg/dbmetrics"
	"github.com/simplyseat/reservation-service/pkg/logger"
	"github.com/simplyseat/reservation-service/pkg/metrics"
	"github.com/simplyseat/reservation-service/pkg/simpletxmanager"
	"github.com/simplyseat/reservation-service/pkg/txmanager"
)

func main() {
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

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем геокодер
	geocoder := geocoderClient.NewClient(
		cfg.Geocoder.URL,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		log,
	)
	log.Info("Geocoder client initialized (url=%s, timeout=%ds, radius=%.1fkm)",
		cfg.Geocoder.URL, cfg.Geocoder.Timeout, cfg.Geocoder.RadiusKm)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Репозитории работают и с голым *sql.DB, и с обёрткой метрик
	var executor bookingRepo.DBExecutor
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	venueRepository := venueRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	ruleRepository := ruleRepo.NewRepository(executor)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		venueRepository,
		catalogRepository,
		ruleRepository,
		bookingRepository,
		availabilityService.RealTimeProvider{},
		log,
		cfg.Booking.MaxRangeDays,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	venueSvc := venuesService.NewService(venueRepository, geocoder, log, cfg.Geocoder.RadiusKm)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUsecase(
		txMgr,
		availabilitySvc,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(availabilitySvc, log)
	getRangeAvailability := getRangeAvailabilityHandler.NewHandler(availabilitySvc, log)
	checkSlot := checkSlotHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск заведений
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)

	// Доступность услуг заведения
	api.HandleFunc("/venues/{venueId}/availability",
		getDayAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/range",
		getRangeAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/check",
		checkSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание брони
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Брони заведения (для персонала) ---
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
