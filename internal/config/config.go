package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	App           AppConfig           `toml:"app"`
	Garage        GarageConfig        `toml:"garage"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	CORSOrigin      string `toml:"cors_origin"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
// Если задан URL, он имеет приоритет над отдельными полями.
type DatabaseConfig struct {
	URL             string `toml:"url"`
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

// DSN возвращает строку подключения
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig настройки рассылки алертов
type NotificationsConfig struct {
	TransportURL        string   `toml:"transport_url"`
	TransportKey        string   `toml:"transport_key"`
	TransportTimeout    int      `toml:"transport_timeout"`
	Recipients          []string `toml:"recipients"`
	GarageEmail         string   `toml:"garage_email"`
	IntervalSeconds     int      `toml:"interval_seconds"`
	InitialDelaySeconds int      `toml:"initial_delay_seconds"`
	DedupTTLSeconds     int      `toml:"dedup_ttl_seconds"`
}

// AppConfig отображаемые имена и публичный адрес фронтенда
type AppConfig struct {
	CompanyName   string `toml:"company_name"`
	AppName       string `toml:"app_name"`
	PublicBaseURL string `toml:"public_base_url"`
}

// GarageConfig настройки ссылок для записи в автосервис
type GarageConfig struct {
	TokenValidityDays int      `toml:"token_validity_days"`
	AllowResubmit     bool     `toml:"allow_resubmit"`
	Rules             []string `toml:"rules"`
}

// RateLimitConfig ограничение частоты запросов к публичным маршрутам
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR, от которых принимается X-Forwarded-For
}

// DefaultGarageRules правила, по которым автосервису отправляется ссылка для записи
var DefaultGarageRules = []string{
	"Contrôle pneumatiques",
	"Entretien essence/diesel",
	"Révision annuelle électrique",
	"Entretien hybride",
}

// Load загружает конфигурацию: TOML файл (если есть), затем .env, затем переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	// .env не обязателен, существующие переменные окружения не перезаписываются
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3001,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			CORSOrigin:      "*",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "fleet",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "fleet-service",
		},
		Notifications: NotificationsConfig{
			TransportTimeout:    10,
			IntervalSeconds:     60,
			InitialDelaySeconds: 10,
		},
		App: AppConfig{
			CompanyName:   "Fleet",
			AppName:       "Fleet Manager",
			PublicBaseURL: "http://localhost:5173",
		},
		Garage: GarageConfig{
			TokenValidityDays: 30,
			Rules:             append([]string(nil), DefaultGarageRules...),
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("ALERT_EMAILS"); v != "" {
		cfg.Notifications.Recipients = splitList(v)
	}
	if v := os.Getenv("NOTIFY_TRANSPORT_URL"); v != "" {
		cfg.Notifications.TransportURL = v
	}
	if v := os.Getenv("NOTIFY_TRANSPORT_KEY"); v != "" {
		cfg.Notifications.TransportKey = v
	}
	if v := os.Getenv("GARAGE_EMAIL"); v != "" {
		cfg.Notifications.GarageEmail = v
	}
	if v := os.Getenv("COMPANY_NAME"); v != "" {
		cfg.App.CompanyName = v
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.App.AppName = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.App.PublicBaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		cfg.RateLimit.TrustedProxies = splitList(v)
	}
}

// Validate проверяет обязательные поля и диапазоны значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Notifications.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: notifications.interval_seconds must be positive", ErrInvalidConfig)
	}
	if c.Notifications.InitialDelaySeconds < 0 {
		return fmt.Errorf("%w: notifications.initial_delay_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Garage.TokenValidityDays <= 0 {
		return fmt.Errorf("%w: garage.token_validity_days must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	for _, p := range c.RateLimit.TrustedProxies {
		if _, _, err := net.ParseCIDR(p); err != nil && net.ParseIP(p) == nil {
			return fmt.Errorf("%w: rate_limit.trusted_proxies: invalid address %q", ErrInvalidConfig, p)
		}
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
