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

	assignVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/assign_vehicle"
	checkEmailHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/check_email"
	createFuelCostHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_fuel_cost"
	createMaintenanceHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_maintenance"
	createReservationHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_reservation"
	createVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_vehicle"
	deleteFuelCostHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_fuel_cost"
	deleteReservationHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_reservation"
	deleteVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/delete_vehicle"
	getGarageBookingHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_garage_booking"
	getProfileHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_profile"
	getUnreadCountHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_unread_count"
	getVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_vehicle"
	healthHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/health"
	listAlertsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_alerts"
	listFuelCostsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_fuel_costs"
	listMaintenanceHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_maintenance"
	listProfilesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_profiles"
	listReservationsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_reservations"
	listRulesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_rules"
	listVehiclesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_vehicles"
	markNotificationsReadHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/mark_notifications_read"
	notifyAlertsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/notify_alerts"
	returnVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/return_vehicle"
	submitGarageBookingHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/submit_garage_booking"
	updateMaintenanceHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_maintenance"
	updateProfileHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_profile"
	updateReservationHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_reservation"
	updateVehicleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_vehicle"
	"github.com/m04kA/SMC-FleetService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetService/internal/config"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	bookingTokenRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/bookingtoken"
	fuelCostRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/fuelcost"
	maintenanceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/maintenance"
	profileRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/profile"
	reservationRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/reservation"
	ruleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/rule"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/integrations/mailer"
	alertsService "github.com/m04kA/SMC-FleetService/internal/service/alerts"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	fuelCostsService "github.com/m04kA/SMC-FleetService/internal/service/fuelcosts"
	garageBookingService "github.com/m04kA/SMC-FleetService/internal/service/garagebooking"
	maintenanceService "github.com/m04kA/SMC-FleetService/internal/service/maintenance"
	"github.com/m04kA/SMC-FleetService/internal/service/notifications"
	profilesService "github.com/m04kA/SMC-FleetService/internal/service/profiles"
	reservationsService "github.com/m04kA/SMC-FleetService/internal/service/reservations"
	rulesService "github.com/m04kA/SMC-FleetService/internal/service/rules"
	vehiclesService "github.com/m04kA/SMC-FleetService/internal/service/vehicles"
	createVehicleUC "github.com/m04kA/SMC-FleetService/internal/usecase/create_vehicle"
	returnVehicleUC "github.com/m04kA/SMC-FleetService/internal/usecase/return_vehicle"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/logger"
	"github.com/m04kA/SMC-FleetService/pkg/metrics"
	"github.com/m04kA/SMC-FleetService/pkg/txmanager"
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

	log.Info("Starting %s...", cfg.App.AppName)

	// Инициализируем метрики (если включены). nil коллектор безопасен для всех потребителей
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
	log.Info("Successfully connected to database")

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	vehicleRepository := vehicleRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	maintenanceRepository := maintenanceRepo.NewRepository(wrappedDB)
	ruleRepository := ruleRepo.NewRepository(wrappedDB)
	fuelCostRepository := fuelCostRepo.NewRepository(wrappedDB)
	bookingTokenRepository := bookingTokenRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	// Таблица токенов может отсутствовать в базе, созданной до появления garage booking
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bookingTokenRepository.EnsureSchema(schemaCtx); err != nil {
		cancelSchema()
		log.Fatal("Failed to ensure booking token schema: %v", err)
	}
	cancelSchema()
	log.Info("Booking token schema ready")

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Отметки об отправленных алертах живут в памяти процесса
	dedup := notifications.NewDedup(time.Duration(cfg.Notifications.DedupTTLSeconds) * time.Second)

	// Инициализируем сервисы
	checker := availability.NewChecker(reservationRepository, maintenanceRepository, metricsCollector, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, checker, txMgr, log)
	reservationSvc := reservationsService.NewService(reservationRepository, vehicleRepository, checker, txMgr, log)
	maintenanceSvc := maintenanceService.NewService(
		maintenanceRepository,
		vehicleRepository,
		ruleRepository,
		checker,
		dedup,
		txMgr,
		log,
	)
	alertSvc := alertsService.NewService(vehicleRepository, ruleRepository, maintenanceRepository, txMgr, metricsCollector, log)
	ruleSvc := rulesService.NewService(ruleRepository, log)
	fuelCostSvc := fuelCostsService.NewService(fuelCostRepository, vehicleRepository, log)
	profileSvc := profilesService.NewService(profileRepository, log)
	garageBookingSvc := garageBookingService.NewService(
		bookingTokenRepository,
		vehicleRepository,
		reservationRepository,
		maintenanceRepository,
		ruleRepository,
		maintenanceSvc,
		txMgr,
		cfg.Garage.AllowResubmit,
		log,
	)

	// Инициализируем use cases
	createVehicleUseCase := createVehicleUC.NewUseCase(
		vehicleRepository,
		ruleRepository,
		maintenanceRepository,
		txMgr,
		log,
	)
	returnVehicleUseCase := returnVehicleUC.NewUseCase(
		reservationRepository,
		vehicleRepository,
		maintenanceRepository,
		txMgr,
		log,
	)

	// Инициализируем рассылку алертов
	mailClient := mailer.NewClient(
		cfg.Notifications.TransportURL,
		cfg.Notifications.TransportKey,
		time.Duration(cfg.Notifications.TransportTimeout)*time.Second,
		log,
	)
	dispatcher := notifications.NewDispatcher(
		alertSvc,
		mailClient,
		bookingTokenRepository,
		dedup,
		metricsCollector,
		log,
		notifications.Config{
			Recipients:    cfg.Notifications.Recipients,
			GarageEmail:   cfg.Notifications.GarageEmail,
			GarageRules:   cfg.Garage.Rules,
			PublicBaseURL: cfg.App.PublicBaseURL,
			AppName:       cfg.App.AppName,
			CompanyName:   cfg.App.CompanyName,
			TokenValidity: time.Duration(cfg.Garage.TokenValidityDays) * domain.Day,
			Interval:      time.Duration(cfg.Notifications.IntervalSeconds) * time.Second,
			InitialDelay:  time.Duration(cfg.Notifications.InitialDelaySeconds) * time.Second,
		},
	)
	log.Info("Notification dispatcher configured (recipients=%d, garage=%t, transport=%t)",
		len(cfg.Notifications.Recipients), cfg.Notifications.GarageEmail != "", mailClient.Enabled())

	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(dispatcherCtx)
	}()

	// Инициализируем handlers
	health := healthHandler.NewHandler(cfg.App.AppName)

	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	createVehicle := createVehicleHandler.NewHandler(createVehicleUseCase, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	assignVehicle := assignVehicleHandler.NewHandler(vehicleSvc, log)

	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	createReservation := createReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	returnVehicle := returnVehicleHandler.NewHandler(returnVehicleUseCase, log)
	getUnreadCount := getUnreadCountHandler.NewHandler(reservationSvc, log)
	markNotificationsRead := markNotificationsReadHandler.NewHandler(reservationSvc, log)

	listMaintenance := listMaintenanceHandler.NewHandler(maintenanceSvc, log)
	createMaintenance := createMaintenanceHandler.NewHandler(maintenanceSvc, log)
	updateMaintenance := updateMaintenanceHandler.NewHandler(maintenanceSvc, log)

	listAlerts := listAlertsHandler.NewHandler(alertSvc, log)
	notifyAlerts := notifyAlertsHandler.NewHandler(dispatcher, log)
	listRules := listRulesHandler.NewHandler(ruleSvc, log)

	getGarageBooking := getGarageBookingHandler.NewHandler(garageBookingSvc, log)
	submitGarageBooking := submitGarageBookingHandler.NewHandler(garageBookingSvc, log)

	listFuelCosts := listFuelCostsHandler.NewHandler(fuelCostSvc, log)
	createFuelCost := createFuelCostHandler.NewHandler(fuelCostSvc, log)
	deleteFuelCost := deleteFuelCostHandler.NewHandler(fuelCostSvc, log)

	listProfiles := listProfilesHandler.NewHandler(profileSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	checkEmail := checkEmailHandler.NewHandler(profileSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.Server.CORSOrigin))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Автомобили ---
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", updateVehicle.Handle).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", deleteVehicle.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id}/assign", assignVehicle.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// статичные пути регистрируются раньше /reservations/{id}
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/vehicle/{id}", listReservations.HandleByVehicle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/user/{id}", listReservations.HandleByUser).Methods(http.MethodGet)
	api.HandleFunc("/reservations/notifications/{userId}", getUnreadCount.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/notifications/{userId}/read", markNotificationsRead.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{id}/return", returnVehicle.Handle).Methods(http.MethodPost)

	// --- Обслуживание ---
	api.HandleFunc("/maintenance", listMaintenance.Handle).Methods(http.MethodGet)
	api.HandleFunc("/maintenance", createMaintenance.Handle).Methods(http.MethodPost)
	api.HandleFunc("/maintenance/vehicle/{id}", listMaintenance.HandleByVehicle).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id}", updateMaintenance.Handle).Methods(http.MethodPut)

	api.HandleFunc("/maintenance-alerts", listAlerts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/maintenance-alerts/vehicle/{id}", listAlerts.HandleByVehicle).Methods(http.MethodGet)
	api.HandleFunc("/maintenance-alerts/notify", notifyAlerts.Handle).Methods(http.MethodPost)

	api.HandleFunc("/maintenance-rules", listRules.Handle).Methods(http.MethodGet)

	// --- Расходы на топливо ---
	api.HandleFunc("/fuel-costs", createFuelCost.Handle).Methods(http.MethodPost)
	api.HandleFunc("/fuel-costs/vehicle/{id}", listFuelCosts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fuel-costs/{id}", deleteFuelCost.Handle).Methods(http.MethodDelete)

	// --- Профили ---
	api.HandleFunc("/profiles", listProfiles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{userId}", getProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{userId}", updateProfile.Handle).Methods(http.MethodPut)
	api.HandleFunc("/check-email", checkEmail.Handle).Methods(http.MethodPost)

	// ============================================================
	// PUBLIC ROUTES (запись автосервиса по ссылке из письма)
	// ============================================================

	garage := api.PathPrefix("/garage-booking").Subrouter()
	if cfg.RateLimit.Enabled {
		garage.Use(middleware.RateLimit(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustedProxies,
			log,
		))
		log.Info("Rate limit enabled for garage booking (rps=%.2f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	garage.HandleFunc("/{token}", getGarageBooking.Handle).Methods(http.MethodGet)
	garage.HandleFunc("/{token}", submitGarageBooking.Handle).Methods(http.MethodPost)

	// Preflight запросы обрабатывает CORS middleware, но mux должен найти маршрут
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

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

	// Останавливаем рассылку до закрытия соединения с базой
	stopDispatcher()
	<-dispatcherDone

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
