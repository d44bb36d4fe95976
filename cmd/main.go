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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/create_appointment"
	createCheckoutHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/create_checkout_session"
	createPublicBookingHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/create_public_booking"
	getAppointmentsHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_available_slots"
	getDashboardStatsHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_dashboard_stats"
	getInsightsHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_insights"
	getNotesHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_notes"
	getProfessionalHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/get_professional"
	updateStatusHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/update_appointment_status"
	updateNotesHandler "github.com/m04kA/AgendaAuto-SchedulingService/internal/api/handlers/update_notes"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/api/middleware"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/config"
	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/appointment"
	notesRepo "github.com/m04kA/AgendaAuto-SchedulingService/internal/infra/storage/notes"
	checkoutClient "github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/checkoutservice"
	insightsClient "github.com/m04kA/AgendaAuto-SchedulingService/internal/integrations/insightsservice"
	appointmentsService "github.com/m04kA/AgendaAuto-SchedulingService/internal/service/appointments"
	notesService "github.com/m04kA/AgendaAuto-SchedulingService/internal/service/notes"
	createAppointmentUC "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/get_available_slots"
	getDashboardStatsUC "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/get_dashboard_stats"
	updateStatusUC "github.com/m04kA/AgendaAuto-SchedulingService/internal/usecase/update_appointment_status"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/logger"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/metrics"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// appointmentStore общий интерфейс хранилища записей
// Его реализуют и Postgres репозиторий, и in-memory вариант
type appointmentStore interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// notesStore общий интерфейс хранилища заметок
type notesStore interface {
	Get(ctx context.Context, professionalID string) (*notesRepo.Notes, error)
	Save(ctx context.Context, n *notesRepo.Notes) error
}

func main() {
	// Подхватываем .env, если он есть (GEMINI_API_KEY и т.п.)
	_ = godotenv.Load()

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

	log.Info("Starting AgendaAuto-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	professional := cfg.ProfessionalRecord()
	log.Info("Professional: %s (%s), session value %.2f",
		professional.Name, professional.Profession, professional.SessionValue)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища: Postgres или in-memory
	var (
		appointmentStorage appointmentStore
		notesStorage       notesStore
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

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")

			appointmentStorage = appointmentRepo.NewRepository(wrappedDB)
			notesStorage = notesRepo.NewRepository(wrappedDB)
		} else {
			appointmentStorage = appointmentRepo.NewRepository(db)
			notesStorage = notesRepo.NewRepository(db)
		}
	} else {
		appointmentStorage = appointmentRepo.NewMemoryRepository()
		notesStorage = notesRepo.NewMemoryRepository()
		log.Info("Database disabled, using in-memory storage (data lives for the session only)")

		if cfg.Booking.SeedDemoData {
			seedDemoData(appointmentStorage, professional, log)
		}
	}

	// Инициализируем интеграционных клиентов
	var insights *insightsClient.Client
	if cfg.Insights.Enabled {
		insights, err = insightsClient.NewClient(
			context.Background(),
			os.Getenv("GEMINI_API_KEY"),
			cfg.Insights.Model,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize insights client: %v", err)
		}
		if insights != nil {
			defer insights.Close()
			log.Info("Insights client initialized (model=%s)", cfg.Insights.Model)
		}
	} else {
		log.Info("Insights disabled by configuration")
	}

	checkout := checkoutClient.NewClient(cfg.Checkout.Plans, cfg.Checkout.TrialDays, log)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentStorage, log)
	notesSvc := notesService.NewService(notesStorage, professional.ID, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentStorage, professional, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentStorage,
		cfg.SlotList(),
		cfg.Booking.ExcludeBookedSlots,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(appointmentStorage, log)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(appointmentStorage, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createPublicBooking := createPublicBookingHandler.NewHandler(createAppointmentUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)
	getInsights := getInsightsHandler.NewHandler(insights, appointmentStorage, professional, cfg.Insights.DefaultLanguage, log)
	getProfessional := getProfessionalHandler.NewHandler(professional, log)
	getNotes := getNotesHandler.NewHandler(notesSvc, log)
	updateNotes := updateNotesHandler.NewHandler(notesSvc, log)
	createCheckout := createCheckoutHandler.NewHandler(checkout, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (публичная страница записи, без аутентификации)
	// ============================================================

	// Данные профессионала для страницы записи
	api.HandleFunc("/professional", getProfessional.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Самостоятельная запись клиента
	api.HandleFunc("/public/appointments", createPublicBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Professional-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(professional.ID, log))

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Дашборд ---
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/insights", getInsights.Handle).Methods(http.MethodGet)

	// --- Блокнот ---
	protected.HandleFunc("/notes", getNotes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notes", updateNotes.Handle).Methods(http.MethodPut)

	// --- Подписка ---
	protected.HandleFunc("/checkout", createCheckout.Handle).Methods(http.MethodPost)

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

// seedDemoData наполняет пустое in-memory хранилище демонстрационными
// записями: подтвержденная сессия сегодня и ожидающая подтверждения завтра
func seedDemoData(store appointmentStore, professional domain.Professional, log *logger.Logger) {
	ctx := context.Background()
	now := time.Now()

	demo := []struct {
		name   string
		phone  string
		date   time.Time
		start  types.TimeString
		status domain.AppointmentStatus
	}{
		{
			name:   "João Ferreira",
			phone:  "11 98765-4321",
			date:   now,
			start:  types.TimeString("14:00"),
			status: domain.StatusConfirmed,
		},
		{
			name:   "Maria Alice",
			phone:  "11 91234-5678",
			date:   now.AddDate(0, 0, 1),
			start:  types.TimeString("10:00"),
			status: domain.StatusPending,
		},
	}

	for i, d := range demo {
		startAt, err := d.start.At(d.date)
		if err != nil {
			log.Warn("Seed: failed to build demo appointment time: %v", err)
			continue
		}

		created, err := store.Create(ctx, &domain.Appointment{
			ID:              fmt.Sprintf("demo-%d", i+1),
			ProfessionalID:  professional.ID,
			ClientName:      d.name,
			ClientPhone:     d.phone,
			Date:            startAt,
			DurationMinutes: domain.DefaultDurationMinutes,
			Status:          domain.StatusPending,
			Value:           professional.SessionValue,
		})
		if err != nil {
			log.Warn("Seed: failed to create demo appointment for %s: %v", d.name, err)
			continue
		}

		if d.status != domain.StatusPending {
			if err := store.UpdateStatus(ctx, created.ID, d.status); err != nil {
				log.Warn("Seed: failed to set demo status for %s: %v", d.name, err)
			}
		}
	}

	log.Info("Seeded %d demo appointments", len(demo))
}
