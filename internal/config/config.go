package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Timeline TimelineConfig `toml:"timeline"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры JWT
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  int    `toml:"token_ttl"` // секунды
}

// TimelineConfig параметры доски бронирований
type TimelineConfig struct {
	BaseCellHeight float64 `toml:"base_cell_height"`
	DefaultDays    int     `toml:"default_days"`
	MaxDays        int     `toml:"max_days"`
	MinZoom        float64 `toml:"min_zoom"`
	MaxZoom        float64 `toml:"max_zoom"`
	SlotInterval   int     `toml:"slot_interval"` // минуты
	LayoutWorkers  int     `toml:"layout_workers"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует.
// Пароль БД и секрет JWT можно переопределить переменными DB_PASSWORD и JWT_SECRET.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "resource_planner",
		},
		Auth: AuthConfig{
			TokenTTL: 3600,
		},
		Timeline: TimelineConfig{
			BaseCellHeight: 160,
			DefaultDays:    7,
			MaxDays:        31,
			MinZoom:        0.5,
			MaxZoom:        2.0,
			SlotInterval:   30,
			LayoutWorkers:  4,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port: %d is out of range", c.Server.HTTPPort))
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		errs = append(errs, errors.New("database: host, user and dbname are required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Timeline.BaseCellHeight <= 0 {
		errs = append(errs, errors.New("timeline.base_cell_height must be positive"))
	}
	if c.Timeline.DefaultDays <= 0 || c.Timeline.DefaultDays > c.Timeline.MaxDays {
		errs = append(errs, fmt.Errorf("timeline.default_days: %d must be in 1..max_days", c.Timeline.DefaultDays))
	}
	if c.Timeline.MinZoom <= 0 || c.Timeline.MinZoom > c.Timeline.MaxZoom {
		errs = append(errs, errors.New("timeline: min_zoom must be positive and not above max_zoom"))
	}
	if c.Timeline.SlotInterval <= 0 || c.Timeline.SlotInterval > 24*60 {
		errs = append(errs, fmt.Errorf("timeline.slot_interval: %d is out of range", c.Timeline.SlotInterval))
	}

	return errors.Join(errs...)
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TokenTTLDuration срок жизни токена
func (a AuthConfig) TokenTTLDuration() time.Duration {
	return time.Duration(a.TokenTTL) * time.Second
}
