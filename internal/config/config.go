package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/AgendaAuto-SchedulingService/internal/domain"
	"github.com/m04kA/AgendaAuto-SchedulingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	Professional ProfessionalConfig `toml:"professional"`
	Booking      BookingConfig      `toml:"booking"`
	Insights     InsightsConfig     `toml:"insights"`
	Checkout     CheckoutConfig     `toml:"checkout"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL
// При enabled=false записи живут только в памяти в течение сессии
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ProfessionalConfig данные профессионала
// Единственный профессионал системы, неизменяем в течение сессии
type ProfessionalConfig struct {
	ID           string  `toml:"id"`
	Name         string  `toml:"name"`
	Profession   string  `toml:"profession"`
	SessionValue float64 `toml:"session_value"`
	WhatsApp     string  `toml:"whatsapp"`
	Email        string  `toml:"email"`
	WorkStart    string  `toml:"work_start"` // "HH:MM"
	WorkEnd      string  `toml:"work_end"`   // "HH:MM"
	WorkDays     []int   `toml:"work_days"`  // 0-6 (Вс-Сб)
}

// BookingConfig настройки публичной записи
type BookingConfig struct {
	// Slots кандидатные слоты; пустой список означает встроенный набор
	Slots []string `toml:"slots"`

	// ExcludeBookedSlots исключать ли из выдачи уже занятые времена
	// По умолчанию false: воспроизводит исходное поведение без проверки
	// двойного бронирования
	ExcludeBookedSlots bool `toml:"exclude_booked_slots"`

	// SeedDemoData наполнять ли in-memory хранилище демо-записями при старте
	SeedDemoData bool `toml:"seed_demo_data"`
}

// InsightsConfig настройки AI-аналитики
// API ключ берется из переменной окружения GEMINI_API_KEY, не из файла
type InsightsConfig struct {
	Enabled         bool   `toml:"enabled"`
	Model           string `toml:"model"`
	DefaultLanguage string `toml:"default_language"`
}

// CheckoutConfig настройки заглушки платежного провайдера
type CheckoutConfig struct {
	Plans     []string `toml:"plans"`
	TrialDays int      `toml:"trial_days"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	if c.Professional.ID == "" {
		return fmt.Errorf("config: professional.id is required")
	}
	if c.Professional.Name == "" {
		return fmt.Errorf("config: professional.name is required")
	}
	if c.Professional.SessionValue < 0 {
		return fmt.Errorf("config: professional.session_value must not be negative")
	}

	if _, err := types.NewTimeStringFromString(c.Professional.WorkStart); err != nil {
		return fmt.Errorf("config: invalid professional.work_start: %w", err)
	}
	if _, err := types.NewTimeStringFromString(c.Professional.WorkEnd); err != nil {
		return fmt.Errorf("config: invalid professional.work_end: %w", err)
	}
	for _, d := range c.Professional.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("config: professional.work_days values must be in 0..6, got %d", d)
		}
	}

	for _, s := range c.Booking.Slots {
		if _, err := types.NewTimeStringFromString(s); err != nil {
			return fmt.Errorf("config: invalid booking.slots entry %q: %w", s, err)
		}
	}

	if c.Database.Enabled {
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database.host and database.dbname are required when database is enabled")
		}
	}

	return nil
}

// ProfessionalRecord собирает доменную модель профессионала из конфигурации
func (c *Config) ProfessionalRecord() domain.Professional {
	return domain.Professional{
		ID:           c.Professional.ID,
		Name:         c.Professional.Name,
		Profession:   c.Professional.Profession,
		SessionValue: c.Professional.SessionValue,
		WhatsApp:     c.Professional.WhatsApp,
		Email:        c.Professional.Email,
		WorkingHours: domain.WorkingHours{
			Start: types.TimeString(c.Professional.WorkStart),
			End:   types.TimeString(c.Professional.WorkEnd),
			Days:  c.Professional.WorkDays,
		},
	}
}

// SlotList возвращает кандидатные слоты из конфигурации или встроенный набор
func (c *Config) SlotList() []types.TimeString {
	if len(c.Booking.Slots) == 0 {
		return domain.DefaultSlots
	}

	slots := make([]types.TimeString, 0, len(c.Booking.Slots))
	for _, s := range c.Booking.Slots {
		slots = append(slots, types.TimeString(s))
	}
	return slots
}
