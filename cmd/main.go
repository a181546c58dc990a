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
	"github.com/spf13/pflag"

	askSupportHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/ask_support"
	clearAlertsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/clear_alerts"
	createAppointmentHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/create_appointment"
	createCompanyHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/create_company"
	deleteAppointmentHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/delete_appointment"
	deleteCompanyHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/delete_company"
	getAppointmentHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_appointment"
	getMeHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_me"
	getMonthAvailabilityHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_month_availability"
	getOpenSlotsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_open_slots"
	getSettingsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_settings"
	getStatsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_stats"
	getToastHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/get_toast"
	listAlertsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/list_alerts"
	listAppointmentsHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/list_appointments"
	listCompaniesHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/list_companies"
	loginHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/login"
	toggleSettingHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/toggle_setting"
	updateAppointmentStatusHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/update_appointment_status"
	updateCompanyHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/update_company"
	updateProfileHandler "github.com/m04kA/SST-VisitService/internal/api/handlers/update_profile"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/config"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/seed"
	settingsStorage "github.com/m04kA/SST-VisitService/internal/infra/storage/settings"
	"github.com/m04kA/SST-VisitService/internal/integrations/supportai"
	alertsService "github.com/m04kA/SST-VisitService/internal/service/alerts"
	appointmentsService "github.com/m04kA/SST-VisitService/internal/service/appointments"
	authService "github.com/m04kA/SST-VisitService/internal/service/auth"
	companiesService "github.com/m04kA/SST-VisitService/internal/service/companies"
	settingsService "github.com/m04kA/SST-VisitService/internal/service/settings"
	createAppointmentUC "github.com/m04kA/SST-VisitService/internal/usecase/create_appointment"
	getMonthAvailabilityUC "github.com/m04kA/SST-VisitService/internal/usecase/get_month_availability"
	getOpenSlotsUC "github.com/m04kA/SST-VisitService/internal/usecase/get_open_slots"
	"github.com/m04kA/SST-VisitService/internal/validation"
	"github.com/m04kA/SST-VisitService/pkg/clock"
	"github.com/m04kA/SST-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SST-VisitService/pkg/logger"
	"github.com/m04kA/SST-VisitService/pkg/metrics"
	"github.com/m04kA/SST-VisitService/pkg/txmanager"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SST-VisitService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов
	catalog := make([]types.TimeString, 0, len(cfg.Scheduling.SlotCatalog))
	for _, raw := range cfg.Scheduling.SlotCatalog {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			log.Fatal("Invalid slot %q in scheduling.slot_catalog: %v", raw, err)
		}
		catalog = append(catalog, slot)
	}

	// Стартовые данные
	snapshot, err := seed.NewLoader(0).Load(cfg.Seed.File)
	if err != nil {
		log.Fatal("Failed to load seed data: %v", err)
	}
	store := entity.NewStore(snapshot)
	log.Info("Seed data loaded (users=%d, companies=%d, appointments=%d)",
		len(snapshot.Users), len(snapshot.Companies), len(snapshot.Appointments))

	// Хранилище настроек: PostgreSQL или память процесса
	var (
		settingsRepo settingsService.Repository
		settingsTx   settingsService.TransactionManager
	)

	if cfg.Database.Enabled {
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

		if err := settingsStorage.Migrate(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}

		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		if cfg.Metrics.Enabled {
			wrappedDB.CollectPoolStats(15*time.Second, stopCh)
			log.Info("Database metrics collection started")
		}

		settingsRepo = settingsStorage.NewRepository(wrappedDB)
		settingsTx = txmanager.NewTransactionManager(wrappedDB)
	} else {
		settingsRepo = settingsStorage.NewMemoryRepository()
		log.Info("Database disabled, settings are kept in memory")
	}

	// Инициализируем сервисы
	validate := validation.New()
	realClock := clock.Real()

	alerts := alertsService.NewService(realClock, cfg.Scheduling.ToastTTL(), log)
	defer alerts.Close()

	appointmentSvc := appointmentsService.NewService(store, store, alerts, metricsCollector, log)
	companySvc := companiesService.NewService(store, alerts, validate, log)
	authSvc := authService.NewService(store, realClock, validate, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), log)

	settingsSvc := settingsService.NewService(settingsRepo, settingsTx, alerts, cfg.Settings.Defaults, log)
	settingsSvc.Load(context.Background())

	supportClient := supportai.NewClient(supportai.Config{
		BaseURL:       cfg.Support.URL,
		Model:         cfg.Support.Model,
		APIKey:        cfg.Support.APIKey,
		Timeout:       time.Duration(cfg.Support.Timeout) * time.Second,
		RatePerSecond: cfg.Support.RatePerSecond,
		Burst:         cfg.Support.Burst,
	}, metricsCollector, log)
	log.Info("Support assistant client initialized (url=%s, model=%s, timeout=%ds)",
		cfg.Support.URL, cfg.Support.Model, cfg.Support.Timeout)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		store,
		store,
		alerts,
		metricsCollector,
		store,
		realClock,
		validate,
		createAppointmentUC.Options{
			SlotCatalog:         catalog,
			DefaultTechnicianID: cfg.Scheduling.DefaultTechnicianID,
		},
		log,
	)

	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		store,
		getMonthAvailabilityUC.Options{
			CatalogSize:      len(catalog),
			LimitedThreshold: cfg.Scheduling.LimitedThreshold,
		},
		log,
	)

	getOpenSlotsUseCase := getOpenSlotsUC.NewUseCase(
		store,
		getOpenSlotsUC.Options{
			SlotCatalog:      catalog,
			LimitedThreshold: cfg.Scheduling.LimitedThreshold,
		},
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(log)
	updateProfile := updateProfileHandler.NewHandler(authSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getOpenSlots := getOpenSlotsHandler.NewHandler(getOpenSlotsUseCase, log)
	getStats := getStatsHandler.NewHandler(appointmentSvc, log)
	listCompanies := listCompaniesHandler.NewHandler(companySvc, log)
	createCompany := createCompanyHandler.NewHandler(companySvc, log)
	updateCompany := updateCompanyHandler.NewHandler(companySvc, log)
	deleteCompany := deleteCompanyHandler.NewHandler(companySvc, log)
	listAlerts := listAlertsHandler.NewHandler(alerts, log)
	clearAlerts := clearAlertsHandler.NewHandler(alerts, log)
	getToast := getToastHandler.NewHandler(alerts, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	toggleSetting := toggleSettingHandler.NewHandler(settingsSvc, log)
	askSupport := askSupportHandler.NewHandler(supportClient, settingsSvc, validate, log)

	// Ограничители запросов по IP
	loginLimiter := middleware.NewRateLimiter(cfg.Server.LoginRatePerSecond, cfg.Server.LoginBurst)
	supportLimiter := middleware.NewRateLimiter(cfg.Support.RatePerSecond, cfg.Support.Burst)
	go loginLimiter.RunCleanup(time.Minute, 3*time.Minute, stopCh)
	go supportLimiter.RunCleanup(time.Minute, 3*time.Minute, stopCh)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.Handle("/auth/login",
		middleware.RateLimit(loginLimiter)(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Профиль ---
	protected.HandleFunc("/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPatch)

	// --- Визиты ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	protected.HandleFunc("/availability", getMonthAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability/{date}/slots", getOpenSlots.Handle).Methods(http.MethodGet)

	// --- Компании ---
	protected.HandleFunc("/companies", listCompanies.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies", createCompany.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{id}", updateCompany.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{id}", deleteCompany.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	protected.HandleFunc("/alerts", listAlerts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/alerts", clearAlerts.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/toast", getToast.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings/{key}/toggle", toggleSetting.Handle).Methods(http.MethodPost)

	// --- Ассистент поддержки ---
	protected.Handle("/support",
		middleware.RateLimit(supportLimiter)(http.HandlerFunc(askSupport.Handle))).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи (метрики пула, очистка лимитеров)
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
