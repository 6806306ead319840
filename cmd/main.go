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

	cancelReservationHandler "github.com/m04kA/GYM-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/GYM-ReservationService/internal/api/handlers/create_reservation"
	getDayScheduleHandler "github.com/m04kA/GYM-ReservationService/internal/api/handlers/get_day_schedule"
	getReservationHandler "github.com/m04kA/GYM-ReservationService/internal/api/handlers/get_reservation"
	setAttendanceHandler "github.com/m04kA/GYM-ReservationService/internal/api/handlers/set_attendance"
	"github.com/m04kA/GYM-ReservationService/internal/api/middleware"
	"github.com/m04kA/GYM-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/slot"
	memberServiceClient "github.com/m04kA/GYM-ReservationService/internal/integrations/memberservice"
	reservationsService "github.com/m04kA/GYM-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/GYM-ReservationService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/m04kA/GYM-ReservationService/internal/usecase/get_day_schedule"
	setAttendanceUC "github.com/m04kA/GYM-ReservationService/internal/usecase/set_attendance"
	"github.com/m04kA/GYM-ReservationService/pkg/logger"
	"github.com/m04kA/GYM-ReservationService/pkg/metrics"
	"github.com/m04kA/GYM-ReservationService/pkg/txmanager"
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

	log.Info("Starting GYM-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс зала — все времена слотов интерпретируются в нем
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Timezone: %s, slot capacity: %d, attendance window: %dh",
		cfg.Booking.Timezone, cfg.Booking.SlotCapacity, cfg.Booking.AttendanceWindowHours)

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

	// Инициализируем клиент справочника участников
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Member directory client initialized (url=%s, timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории и transaction manager
	reservationRepository := reservationRepo.NewRepository(db)
	slotRepository := slotRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		slotRepository,
		txMgr,
		cfg.Booking.SlotCapacity,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		memberClient,
		txMgr,
		cfg.Booking.SlotCapacity,
		log,
	)

	setAttendanceUseCase := setAttendanceUC.NewUseCase(
		reservationRepository,
		slotRepository,
		location,
		cfg.Booking.AttendanceWindow(),
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		memberClient,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	setAttendance := setAttendanceHandler.NewHandler(setAttendanceUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Объединенное расписание дня (мануальные + виртуальные резервации)
	api.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// Получение резервации по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание резервации (участник или walk-in)
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена резервации
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Изменение посещаемости
	protected.HandleFunc("/reservations/{reservationId}/attendance", setAttendance.Handle).Methods(http.MethodPatch)

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
