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

	changeReservationStateHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/change_reservation_state"
	countUnreadNotificationsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/count_unread_notifications"
	createReservationHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/create_reservation"
	createSlotHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/create_slot"
	deleteNotificationHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/delete_notification"
	deleteReservationHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/delete_reservation"
	deleteSlotHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/delete_slot"
	getAvailableDatesHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_available_slots"
	getClientReservationsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_client_reservations"
	getNotificationsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_notifications"
	getProviderReservationsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_provider_reservations"
	getProviderSlotsHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_provider_slots"
	getReservationHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/get_reservation"
	markAllNotificationsReadHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/mark_notification_read"
	rescheduleReservationHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/reschedule_reservation"
	updateSlotHandler "github.com/glamtime/GT-BookingService/internal/api/handlers/update_slot"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	"github.com/glamtime/GT-BookingService/internal/config"
	notificationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/notification"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
	catalogServiceClient "github.com/glamtime/GT-BookingService/internal/integrations/catalogservice"
	userServiceClient "github.com/glamtime/GT-BookingService/internal/integrations/userservice"
	"github.com/glamtime/GT-BookingService/internal/notifier"
	notificationsService "github.com/glamtime/GT-BookingService/internal/service/notifications"
	reservationsService "github.com/glamtime/GT-BookingService/internal/service/reservations"
	slotsService "github.com/glamtime/GT-BookingService/internal/service/slots"
	changeReservationStateUC "github.com/glamtime/GT-BookingService/internal/usecase/change_reservation_state"
	createReservationUC "github.com/glamtime/GT-BookingService/internal/usecase/create_reservation"
	getAvailableDatesUC "github.com/glamtime/GT-BookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/glamtime/GT-BookingService/internal/usecase/get_available_slots"
	rescheduleReservationUC "github.com/glamtime/GT-BookingService/internal/usecase/reschedule_reservation"
	"github.com/glamtime/GT-BookingService/pkg/logger"
	"github.com/glamtime/GT-BookingService/pkg/metrics"
	"github.com/glamtime/GT-BookingService/pkg/txmanager"
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

	log.Info("Starting GT-BookingService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории и transaction manager
	slotRepository := slotRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	notificationRepository := notificationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Диспетчер уведомлений (best-effort)
	dispatcher := notifier.NewDispatcher(notificationRepository, log)

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(
		slotRepository,
		reservationRepository,
		userClient,
		txMgr,
		log,
	)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		slotRepository,
		dispatcher,
		log,
	)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		userClient,
		catalogClient,
		dispatcher,
		txMgr,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		dispatcher,
		txMgr,
		log,
	)
	changeReservationStateUseCase := changeReservationStateUC.NewUseCase(
		reservationRepository,
		slotRepository,
		dispatcher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		reservationRepository,
		txMgr,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		slotRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	getProviderSlots := getProviderSlotsHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	changeReservationState := changeReservationStateHandler.NewHandler(changeReservationStateUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	getProviderReservations := getProviderReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	countUnreadNotifications := countUnreadNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)
	deleteNotification := deleteNotificationHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Витрина доступности мастера
	api.HandleFunc("/providers/{providerId}/slots",
		getProviderSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты мастера ---
	protected.HandleFunc("/providers/{providerId}/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/state", changeReservationState.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/reservations", getProviderReservations.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/unread-count", countUnreadNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{notificationId}", deleteNotification.Handle).Methods(http.MethodDelete)

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
