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
	"github.com/redis/go-redis/v9"

	appointmentsHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/appointments"
	clientsHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/clients"
	formSessionsHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/formsessions"
	incidentsHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/incidents"
	providersHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/providers"
	servicesHandler "github.com/clarkyangjw/schedulease-web/internal/api/handlers/services"
	"github.com/clarkyangjw/schedulease-web/internal/api/middleware"
	"github.com/clarkyangjw/schedulease-web/internal/config"
	"github.com/clarkyangjw/schedulease-web/internal/infra/cache/lookup"
	incidentRepo "github.com/clarkyangjw/schedulease-web/internal/infra/storage/incident"
	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	appointmentsService "github.com/clarkyangjw/schedulease-web/internal/service/appointments"
	directoryService "github.com/clarkyangjw/schedulease-web/internal/service/directory"
	formSessionService "github.com/clarkyangjw/schedulease-web/internal/service/formsession"
	incidentsService "github.com/clarkyangjw/schedulease-web/internal/service/incidents"
	createAppointmentUC "github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	queryAvailableProvidersUC "github.com/clarkyangjw/schedulease-web/internal/usecase/query_available_providers"
	updateAppointmentUC "github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
	"github.com/clarkyangjw/schedulease-web/pkg/dbmetrics"
	"github.com/clarkyangjw/schedulease-web/pkg/logger"
	"github.com/clarkyangjw/schedulease-web/pkg/metrics"
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

	log.Info("Starting ScheduleEase admin gateway...")
	log.Info("Configuration loaded from config.toml")

	// Коллектор метрик создаём всегда: бизнес-метрики (активные формы,
	// инциденты) пишутся независимо от того, открыт ли endpoint.
	// cfg.Metrics.Enabled управляет только HTTP middleware,
	// /metrics endpoint и обёрткой базы.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал инцидентов)
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

	// Подключаемся к Redis (кеш справочников). Кеш работает в режиме
	// fail-open, поэтому недоступный Redis не блокирует запуск.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, lookup cache degraded: %v", err)
	} else {
		log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)
	}

	lookupCache := lookup.NewCache(rdb, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	// Инициализируем клиента Schedule Core
	coreClient := schedcore.NewCoreClient(
		cfg.ScheduleCore.URL,
		time.Duration(cfg.ScheduleCore.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Schedule Core client initialized (url=%s timeout=%ds)",
		cfg.ScheduleCore.URL, cfg.ScheduleCore.Timeout)

	// Инициализируем репозиторий инцидентов (с метриками или без)
	var incidentRepository *incidentRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		incidentRepository = incidentRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		incidentRepository = incidentRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	incidentsSvc := incidentsService.NewService(incidentRepository, log, metricsCollector)
	directorySvc := directoryService.NewService(coreClient, lookupCache, log)
	appointmentsSvc := appointmentsService.NewService(coreClient, log)

	// Инициализируем use cases
	queryAvailableProviders := queryAvailableProvidersUC.NewUseCase(coreClient, log)
	createAppointment := createAppointmentUC.NewUsecase(coreClient, log)
	updateAppointment := updateAppointmentUC.NewUsecase(coreClient, incidentsSvc, log)

	// Часовой пояс для редактируемого поля времени
	loc, err := time.LoadLocation(cfg.FormSessions.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.FormSessions.Timezone, err)
	}

	// Сервис форм записи и фоновая чистка просроченных сессий
	formSessions := formSessionService.NewService(
		queryAvailableProviders,
		createAppointment,
		updateAppointment,
		loc,
		time.Duration(cfg.FormSessions.TTLSeconds)*time.Second,
		log,
		metricsCollector,
	)
	formSessions.StartSweeper(stopCh)
	log.Info("Form session service started (ttl=%ds, timezone=%s)",
		cfg.FormSessions.TTLSeconds, cfg.FormSessions.Timezone)

	// Инициализируем handlers
	clients := clientsHandler.NewHandler(directorySvc, log)
	providers := providersHandler.NewHandler(directorySvc, log)
	services := servicesHandler.NewHandler(directorySvc, log)
	appointments := appointmentsHandler.NewHandler(
		createAppointment,
		updateAppointment,
		queryAvailableProviders,
		appointmentsSvc,
		log,
	)
	forms := formSessionsHandler.NewHandler(formSessions, appointmentsSvc, log)
	incidents := incidentsHandler.NewHandler(incidentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочники ---
	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", clients.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}", clients.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/providers", providers.List).Methods(http.MethodGet)
	api.HandleFunc("/providers", providers.Create).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}", providers.Get).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}", providers.Update).Methods(http.MethodPut)
	api.HandleFunc("/providers/{id}", providers.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/services", services.List).Methods(http.MethodGet)
	api.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	api.HandleFunc("/services/{id}", services.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", services.Delete).Methods(http.MethodDelete)

	// --- Записи ---
	// Статический маршрут регистрируется до /appointments/{id}
	api.HandleFunc("/appointments/available-providers", appointments.AvailableProviders).Methods(http.MethodGet)
	api.HandleFunc("/appointments", appointments.List).Methods(http.MethodGet)
	api.HandleFunc("/appointments", appointments.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", appointments.Update).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/status", appointments.UpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", appointments.Delete).Methods(http.MethodDelete)

	// --- Формы записи ---
	api.HandleFunc("/form-sessions", forms.Open).Methods(http.MethodPost)
	api.HandleFunc("/form-sessions/{id}", forms.Patch).Methods(http.MethodPatch)
	api.HandleFunc("/form-sessions/{id}/submit", forms.Submit).Methods(http.MethodPost)
	api.HandleFunc("/form-sessions/{id}", forms.Cancel).Methods(http.MethodDelete)

	// --- Инциденты ---
	api.HandleFunc("/incidents", incidents.List).Methods(http.MethodGet)
	api.HandleFunc("/incidents/{id}/ack", incidents.Acknowledge).Methods(http.MethodPost)

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

	// Останавливаем фоновые горутины (чистка сессий, статистика пула)
	close(stopCh)

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
