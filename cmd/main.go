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

	allocateAssignmentHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/allocate_assignment"
	cancelAssignmentHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/cancel_assignment"
	cancelBookingHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/create_booking"
	createResourceHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/create_resource"
	extendBookingHoldHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/extend_booking_hold"
	getAssignmentHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/get_assignment"
	getBookingHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/get_booking"
	getResourceHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/get_resource"
	listAssignmentsHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/list_assignments"
	resolveAvailabilityHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/resolve_availability"
	updateResourceRulesHandler "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers/update_resource_rules"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/middleware"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/config"
	assignmentRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/assignment"
	bookingRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/booking"
	resourceRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/resource"
	customerServiceClient "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/integrations/customerservice"
	assignmentsService "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments"
	bookingsService "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings"
	ledgerService "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/ledger"
	resourcesService "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/resources"
	allocateAssignmentUC "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/allocate_assignment"
	cancelAssignmentUC "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/cancel_assignment"
	resolveAvailabilityUC "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/resolve_availability"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/dbmetrics"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/keylock"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/logger"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/metrics"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/simpletxmanager"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/txmanager"
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

	log.Info("Starting AssignmentScheduler...")
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

	// Инициализируем интеграционных клиентов
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CustomerService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		resourceRepository   *resourceRepo.Repository
		bookingRepository    *bookingRepo.Repository
		assignmentRepository *assignmentRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Per-resource блокировки планировщика
	resourceLocks := keylock.NewTable()

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(assignmentRepository, log)
	assignmentsSvc := assignmentsService.NewService(assignmentRepository, log)
	resourcesSvc := resourcesService.NewService(resourceRepository, log)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		assignmentRepository,
		customerClient,
		txMgr,
		bookingsService.RealTimeProvider{},
		log,
		cfg.Scheduler.DraftHoldMinutes,
	)

	// Инициализируем use cases
	var schedulerMetrics allocateAssignmentUC.SchedulerMetrics
	if cfg.Metrics.Enabled {
		schedulerMetrics = metricsCollector
	}

	allocateAssignmentUseCase := allocateAssignmentUC.NewUseCase(
		resourceRepository,
		bookingRepository,
		assignmentRepository,
		ledgerSvc,
		txMgr,
		resourceLocks,
		time.Duration(cfg.Scheduler.LockWaitSeconds)*time.Second,
		schedulerMetrics,
		log,
	)
	cancelAssignmentUseCase := cancelAssignmentUC.NewUseCase(assignmentRepository, log)
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(resourceRepository, log)

	// Инициализируем handlers
	allocateAssignment := allocateAssignmentHandler.NewHandler(allocateAssignmentUseCase, log)
	cancelAssignment := cancelAssignmentHandler.NewHandler(cancelAssignmentUseCase, log)
	getAssignment := getAssignmentHandler.NewHandler(assignmentsSvc, log)
	listAssignments := listAssignmentsHandler.NewHandler(assignmentsSvc, log)
	resolveAvailability := resolveAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	extendBookingHold := extendBookingHoldHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	createResource := createResourceHandler.NewHandler(resourcesSvc, log)
	getResource := getResourceHandler.NewHandler(resourcesSvc, log)
	updateResourceRules := updateResourceRulesHandler.NewHandler(resourcesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Открытые интервалы ресурса по его правилам доступности
	api.HandleFunc("/resources/{resourceId}/availability",
		resolveAvailability.Handle).Methods(http.MethodGet)

	// Карточка ресурса
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (вызываются внутренними сервисами)
	// ============================================================

	// Создание ресурса
	api.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)

	// Полная замена правил доступности ресурса
	api.HandleFunc("/resources/{resourceId}/rules", updateResourceRules.Handle).Methods(http.MethodPut)

	// --- Назначения (планировщик) ---
	// Атомарная аллокация назначения
	api.HandleFunc("/assignments", allocateAssignment.Handle).Methods(http.MethodPost)

	// Список назначений с фильтрацией
	api.HandleFunc("/assignments", listAssignments.Handle).Methods(http.MethodGet)

	// Назначение по ID
	api.HandleFunc("/assignments/{assignmentId}", getAssignment.Handle).Methods(http.MethodGet)

	// Идемпотентная отмена назначения
	api.HandleFunc("/assignments/{assignmentId}/cancel", cancelAssignment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание черновика бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение черновика
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования вместе с назначениями
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Продление hold черновика
	protected.HandleFunc("/bookings/{bookingId}/hold", extendBookingHold.Handle).Methods(http.MethodPatch)

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
