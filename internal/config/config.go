package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Scheduler       SchedulerConfig       `toml:"scheduler"`
	CustomerService CustomerServiceConfig `toml:"customerservice"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SchedulerConfig настройки планировщика назначений
type SchedulerConfig struct {
	// LockWaitSeconds сколько ждать per-resource блокировку
	// до отказа с конкурентным конфликтом
	LockWaitSeconds int `toml:"lock_wait_seconds"`

	// DraftHoldMinutes сколько черновик удерживает вместимость
	DraftHoldMinutes int `toml:"draft_hold_minutes"`
}

// CustomerServiceConfig настройки интеграции с CustomerService
type CustomerServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для пропущенных полей
func (c *Config) applyDefaults() {
	if c.Scheduler.LockWaitSeconds <= 0 {
		c.Scheduler.LockWaitSeconds = domain.DefaultLockWaitSeconds
	}
	if c.Scheduler.DraftHoldMinutes <= 0 {
		c.Scheduler.DraftHoldMinutes = domain.DefaultDraftHoldMinutes
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
}
