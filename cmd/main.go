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

	calculatePriceHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/delete_booking"
	earlyCheckoutHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/early_checkout"
	getBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/get_user_bookings"
	payBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/pay_booking"
	refundBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/refund_booking"
	updateBookingHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/TRV-BookingEngine/internal/api/handlers/update_booking_status"
	"github.com/m04kA/TRV-BookingEngine/internal/api/middleware"
	"github.com/m04kA/TRV-BookingEngine/internal/config"
	bookingRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/booking"
	resourceRepo "github.com/m04kA/TRV-BookingEngine/internal/infra/storage/resource"
	razorpayClient "github.com/m04kA/TRV-BookingEngine/internal/integrations/razorpay"
	availabilityService "github.com/m04kA/TRV-BookingEngine/internal/service/availability"
	bookingsService "github.com/m04kA/TRV-BookingEngine/internal/service/bookings"
	itineraryService "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
	pricingService "github.com/m04kA/TRV-BookingEngine/internal/service/pricing"
	calculatePriceUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/calculate_price"
	checkAvailabilityUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/create_booking"
	earlyCheckoutUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/early_checkout"
	payBookingUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/pay_booking"
	updateBookingUC "github.com/m04kA/TRV-BookingEngine/internal/usecase/update_booking"
	"github.com/m04kA/TRV-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/TRV-BookingEngine/pkg/logger"
	"github.com/m04kA/TRV-BookingEngine/pkg/metrics"
	"github.com/m04kA/TRV-BookingEngine/pkg/simpletxmanager"
	"github.com/m04kA/TRV-BookingEngine/pkg/txmanager"
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

	log.Info("Starting TRV-BookingEngine...")
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

	// Инициализируем клиента платежного шлюза
	gateway := razorpayClient.NewClient(
		cfg.Razorpay.BaseURL,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		time.Duration(cfg.Razorpay.Timeout)*time.Second,
		log,
	)
	log.Info("Razorpay client initialized (base_url=%s, timeout=%ds)", cfg.Razorpay.BaseURL, cfg.Razorpay.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		resourceRepository *resourceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	checker := availabilityService.NewChecker(bookingRepository, log)
	calculator := pricingService.NewCalculator()
	itinerarySvc := itineraryService.NewService(resourceRepository, checker, calculator, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, itinerarySvc, txMgr, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, itinerarySvc, txMgr, log)
	payBookingUseCase := payBookingUC.NewUseCase(bookingRepository, itinerarySvc, gateway, txMgr, log)
	earlyCheckoutUseCase := earlyCheckoutUC.NewUseCase(bookingRepository, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(itinerarySvc, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(itinerarySvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	payBooking := payBookingHandler.NewHandler(payBookingUseCase, log)
	earlyCheckout := earlyCheckoutHandler.NewHandler(earlyCheckoutUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	refundBooking := refundBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Предпросмотр доступности маршрута
	api.HandleFunc("/check-availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Расчет цены маршрута
	api.HandleFunc("/calculate-price", calculatePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание черновика
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Редактирование черновика
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление черновика
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Оплата черновика (draft → booked)
	protected.HandleFunc("/bookings/{bookingId}/pay", payBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

	// Административный переход статуса
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// Ранний выезд
	protected.HandleFunc("/bookings/{bookingId}/early-checkout", earlyCheckout.Handle).Methods(http.MethodPut)

	// Возврат средств
	protected.HandleFunc("/bookings/{bookingId}/refund", refundBooking.Handle).Methods(http.MethodPut)

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
