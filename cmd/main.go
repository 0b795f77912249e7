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

	createBookingHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/create_booking"
	createDepartmentHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/create_department"
	createPersonHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/create_person"
	deleteBookingHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/delete_booking"
	deletePersonHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/delete_person"
	getBookingHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_booking"
	getDepartmentMembersHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_department_members"
	getEndTimeOptionsHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_end_time_options"
	getMeHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_me"
	getPersonHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_person"
	getTimelineHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/get_timeline"
	listBookingsHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/list_bookings"
	listDepartmentsHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/list_departments"
	listPersonnelHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/list_personnel"
	loginHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/register"
	updateAvailabilityHandler "github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers/update_availability"
	"github.com/m04kA/SMC-ResourcePlanner/internal/api/middleware"
	"github.com/m04kA/SMC-ResourcePlanner/internal/config"
	bookingRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/booking"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	personnelRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/personnel"
	authService "github.com/m04kA/SMC-ResourcePlanner/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-ResourcePlanner/internal/service/bookings"
	departmentsService "github.com/m04kA/SMC-ResourcePlanner/internal/service/departments"
	personnelService "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel"
	createBookingUC "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/create_booking"
	getEndTimeOptionsUC "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_end_time_options"
	getTimelineUC "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_timeline"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/logger"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/metrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/txmanager"
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

	log.Info("Starting SMC-ResourcePlanner...")

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка над БД: транзакции в контексте и (опционально) метрики пула
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	personnelRepository := personnelRepo.NewRepository(wrappedDB)
	departmentRepository := departmentRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	personnelSvc := personnelService.NewService(personnelRepository, departmentRepository, log)
	departmentsSvc := departmentsService.NewService(departmentRepository, personnelRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	authSvc := authService.NewService(personnelRepository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDuration(), log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		personnelRepository,
		departmentRepository,
		txMgr,
		log,
	)

	var layoutMetrics getTimelineUC.LayoutMetrics
	if cfg.Metrics.Enabled {
		layoutMetrics = metricsCollector
	}
	getTimelineUseCase := getTimelineUC.NewUseCase(
		personnelRepository,
		departmentRepository,
		bookingRepository,
		layoutMetrics,
		getTimelineUC.Settings{
			BaseCellHeight: cfg.Timeline.BaseCellHeight,
			DefaultDays:    cfg.Timeline.DefaultDays,
			MaxDays:        cfg.Timeline.MaxDays,
			MinZoom:        cfg.Timeline.MinZoom,
			MaxZoom:        cfg.Timeline.MaxZoom,
			Workers:        cfg.Timeline.LayoutWorkers,
			ServiceName:    cfg.Metrics.ServiceName,
		},
		log,
	)

	getEndTimeOptionsUseCase, err := getEndTimeOptionsUC.NewUseCase(personnelRepository, cfg.Timeline.SlotInterval, log)
	if err != nil {
		log.Fatal("Failed to initialize end time options: %v", err)
	}

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)

	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)

	listPersonnel := listPersonnelHandler.NewHandler(personnelSvc, log)
	getPerson := getPersonHandler.NewHandler(personnelSvc, log)
	createPerson := createPersonHandler.NewHandler(personnelSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(personnelSvc, log)
	deletePerson := deletePersonHandler.NewHandler(personnelSvc, log)
	getEndTimeOptions := getEndTimeOptionsHandler.NewHandler(getEndTimeOptionsUseCase, log)

	listDepartments := listDepartmentsHandler.NewHandler(departmentsSvc, log)
	createDepartment := createDepartmentHandler.NewHandler(departmentsSvc, log)
	getDepartmentMembers := getDepartmentMembersHandler.NewHandler(departmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(cfg.Auth.JWTSecret, log).Middleware)

	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Доска ---
	protected.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Сотрудники ---
	protected.HandleFunc("/personnel", listPersonnel.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/personnel", createPerson.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/personnel/{personId}", getPerson.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/personnel/{personId}", deletePerson.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/personnel/{personId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/personnel/{personId}/end-times", getEndTimeOptions.Handle).Methods(http.MethodGet)

	// --- Отделы ---
	protected.HandleFunc("/departments", listDepartments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/departments", createDepartment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/departments/{departmentId}/members", getDepartmentMembers.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
