package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	MemberService MemberServiceConfig `toml:"member_service"`
	Booking       BookingConfig       `toml:"booking"`
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MemberServiceConfig настройки клиента справочника участников
type MemberServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig настройки бронирования
type BookingConfig struct {
	SlotCapacity          int    `toml:"slot_capacity"`
	AttendanceWindowHours int    `toml:"attendance_window_hours"`
	Timezone              string `toml:"timezone"`
}

// AttendanceWindow возвращает окно коррекции посещаемости как Duration
func (c *BookingConfig) AttendanceWindow() time.Duration {
	return time.Duration(c.AttendanceWindowHours) * time.Hour
}

// Location загружает часовой пояс зала
func (c *BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Booking.SlotCapacity == 0 {
		c.Booking.SlotCapacity = domain.DefaultSlotCapacity
	}
	if c.Booking.AttendanceWindowHours == 0 {
		c.Booking.AttendanceWindowHours = domain.DefaultAttendanceWindowHours
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = domain.DefaultTimezone
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
}
