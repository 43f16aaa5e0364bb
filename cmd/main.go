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

	bookForSportHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/book_for_sport"
	cancelBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_booking"
	getUserBookingsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_user_bookings"
	listSportsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/list_sports"
	searchCourtsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/search_courts"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/config"
	courtCache "github.com/quickcourt/QC-BookingService/internal/infra/cache"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/catalog"
	userServiceClient "github.com/quickcourt/QC-BookingService/internal/integrations/userservice"
	bookingsService "github.com/quickcourt/QC-BookingService/internal/service/bookings"
	catalogService "github.com/quickcourt/QC-BookingService/internal/service/catalog"
	bookForSportUC "github.com/quickcourt/QC-BookingService/internal/usecase/book_for_sport"
	checkAvailabilityUC "github.com/quickcourt/QC-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/logger"
	"github.com/quickcourt/QC-BookingService/pkg/metrics"
	"github.com/quickcourt/QC-BookingService/pkg/simpletxmanager"
	"github.com/quickcourt/QC-BookingService/pkg/txmanager"
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

	log.Info("Starting QC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем redis-кэш справочника (если включен)
	var cache *courtCache.CourtCache
	if cfg.Cache.Enabled {
		cache = courtCache.New(
			cfg.Cache.Addr,
			cfg.Cache.Password,
			cfg.Cache.DB,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			// Кэш опционален: работаем дальше без него
			log.Warn("Redis unavailable, continuing without cache: %v", err)
			cache = nil
		} else {
			log.Info("Connected to redis cache at %s", cfg.Cache.Addr)
			defer cache.Close()
		}
		cancel()
	}

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	var catalogSvc *catalogService.Service
	if cache != nil {
		catalogSvc = catalogService.NewService(catalogRepository, cache, log)
	} else {
		catalogSvc = catalogService.NewService(catalogRepository, nil, log)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		userClient,
		txMgr,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)

	bookForSportUseCase := bookForSportUC.NewUseCase(
		catalogRepository,
		createBookingUseCase,
		log,
	)

	// Инициализируем handlers
	listSports := listSportsHandler.NewHandler(catalogSvc, log)
	searchCourts := searchCourtsHandler.NewHandler(catalogSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookForSport := bookForSportHandler.NewHandler(bookForSportUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Прогреваем кэш справочника
	if cache != nil {
		go catalogSvc.WarmupCache(context.Background(), 10*time.Second)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник видов спорта
	api.HandleFunc("/sports", listSports.Handle).Methods(http.MethodGet)

	// Поиск кортов по виду спорта
	api.HandleFunc("/courts", searchCourts.Handle).Methods(http.MethodGet)

	// Проверка доступности слота на корте
	api.HandleFunc("/courts/{courtId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования на конкретный корт
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирование первого свободного корта по виду спорта
	protected.HandleFunc("/bookings/by-sport", bookForSport.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
