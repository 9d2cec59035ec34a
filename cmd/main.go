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

	cancelReservationHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/cancel_reservation"
	checkRoomAvailabilityHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/check_room_availability"
	createReservationHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/delete_room"
	getReservationHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/get_room"
	listMyReservationsHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/list_my_reservations"
	listReservationsHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/list_rooms"
	payReservationHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/pay_reservation"
	searchAvailabilityHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/search_availability"
	updateReservationStatusHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/update_reservation_status"
	updateRoomHandler "github.com/m04kA/SMC-HotelReservationService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/config"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/codes"
	reservationsService "github.com/m04kA/SMC-HotelReservationService/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-HotelReservationService/internal/service/rooms"
	changeStatusUC "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
	createReservationUC "github.com/m04kA/SMC-HotelReservationService/internal/usecase/create_reservation"
	deleteRoomUC "github.com/m04kA/SMC-HotelReservationService/internal/usecase/delete_room"
	searchAvailabilityUC "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
	"github.com/m04kA/SMC-HotelReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
	"github.com/m04kA/SMC-HotelReservationService/pkg/metrics"
	"github.com/m04kA/SMC-HotelReservationService/pkg/txmanager"
)

// Хранилище выбирается конфигом: postgres или память (локальный запуск)
type roomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	ListAvailable(ctx context.Context, start, end time.Time) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	SoftDelete(ctx context.Context, id string) error
}

type reservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
	HasBlockingOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	CountActiveFuture(ctx context.Context, roomID string, now time.Time) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (time.Time, error)
	NextCodeSequence(ctx context.Context, year int) (int64, error)
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SMC-HotelReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		rooms        roomRepository
		reservations reservationRepository
		txMgr        transactionManager
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		rooms = store.Rooms()
		reservations = store.Reservations()
		txMgr = store
		log.Warn("Using in-memory storage: data is lost on restart")

	default:
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

		// Без коллектора обёртка просто проксирует запросы
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

		rooms = roomRepo.NewRepository(wrappedDB)
		reservations = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Генератор кодов бронирования
	codeGenerator := codes.NewGenerator(reservations)

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(rooms, txMgr, log)
	reservationSvc := reservationsService.NewService(reservations, txMgr, log)

	// Инициализируем use cases
	var reservationMetrics createReservationUC.MetricsRecorder
	if metricsCollector != nil {
		reservationMetrics = metricsCollector
	}

	createReservationUseCase := createReservationUC.NewUseCase(
		rooms,
		reservations,
		codeGenerator,
		txMgr,
		reservationMetrics,
		log,
	)
	searchAvailabilityUseCase := searchAvailabilityUC.NewUseCase(rooms, reservations, log)
	changeStatusUseCase := changeStatusUC.NewUseCase(reservations, txMgr, log)
	deleteRoomUseCase := deleteRoomUC.NewUseCase(rooms, reservations, txMgr, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(deleteRoomUseCase, log)
	searchAvailability := searchAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	checkRoomAvailability := checkRoomAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listMyReservations := listMyReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(changeStatusUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(changeStatusUseCase, log)
	payReservation := payReservationHandler.NewHandler(changeStatusUseCase, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, log)

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
	// PUBLIC ROUTES (токен не обязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(auth.Optional)

	// Поиск свободных номеров (регистрируется раньше /rooms/{roomId})
	public.HandleFunc("/rooms/availability/search", searchAvailability.Handle).Methods(http.MethodGet)

	// Каталог номеров
	public.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	public.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Доступность конкретного номера
	public.HandleFunc("/rooms/{roomId}/availability", checkRoomAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования (гость или авторизованный пользователь)
	public.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/mine", listMyReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/pay", payReservation.Handle).Methods(http.MethodPost)

	// --- Управление номерами (персонал) ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

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
