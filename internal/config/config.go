package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие секреты из файла
const (
	EnvDBPassword    = "SST_DB_PASSWORD"
	EnvJWTSecret     = "SST_JWT_SECRET"
	EnvSupportAPIKey = "SST_SUPPORT_API_KEY"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Seed       SeedConfig       `toml:"seed"`
	Auth       AuthConfig       `toml:"auth"`
	Support    SupportConfig    `toml:"support"`
	Settings   SettingsConfig   `toml:"settings"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// Ограничение запросов на логин с одного IP
	LoginRatePerSecond float64 `toml:"login_rate_per_second"`
	LoginBurst         int     `toml:"login_burst"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	// Enabled выключает PostgreSQL: настройки хранятся в памяти
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type SchedulingConfig struct {
	SlotCatalog         []string `toml:"slot_catalog"`
	LimitedThreshold    int      `toml:"limited_threshold"`
	DefaultTechnicianID string   `toml:"default_technician_id"`
	ToastTTLSeconds     int      `toml:"toast_ttl_seconds"`
}

// ToastTTL время жизни всплывающего уведомления
func (s SchedulingConfig) ToastTTL() time.Duration {
	return time.Duration(s.ToastTTLSeconds) * time.Second
}

type SeedConfig struct {
	// File путь к YAML со стартовыми данными; пусто - встроенный набор
	File string `toml:"file"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// TokenTTL время жизни токена сессии
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

type SupportConfig struct {
	URL           string  `toml:"url"`
	Model         string  `toml:"model"`
	APIKey        string  `toml:"api_key"`
	Timeout       int     `toml:"timeout"`
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
}

type SettingsConfig struct {
	// Defaults значения флагов, если загрузить сохранённые не удалось
	Defaults map[string]bool `toml:"defaults"`
}

// Load читает конфигурацию из TOML файла.
// Перед чтением подгружается .env (если он есть), секреты берутся из окружения.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:           8080,
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			ShutdownTimeout:    10,
			LoginRatePerSecond: 1,
			LoginBurst:         5,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sst_visit_service",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Scheduling: SchedulingConfig{
			LimitedThreshold:    3,
			DefaultTechnicianID: "tech_1",
			ToastTTLSeconds:     4,
		},
		Auth: AuthConfig{TokenTTLMinutes: 720},
		Support: SupportConfig{
			URL:           "https://generativelanguage.googleapis.com",
			Model:         "gemini-2.5-flash",
			Timeout:       20,
			RatePerSecond: 0.5,
			Burst:         3,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(EnvSupportAPIKey); v != "" {
		c.Support.APIKey = v
	}
}

func (c *Config) fillDefaults() {
	if len(c.Scheduling.SlotCatalog) == 0 {
		c.Scheduling.SlotCatalog = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	}
	if c.Scheduling.ToastTTLSeconds <= 0 {
		c.Scheduling.ToastTTLSeconds = 4
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port out of range")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		problems = append(problems, "auth.jwt_secret is required (or "+EnvJWTSecret+")")
	}
	if c.Scheduling.LimitedThreshold <= 0 || c.Scheduling.LimitedThreshold > len(c.Scheduling.SlotCatalog) {
		problems = append(problems, "scheduling.limited_threshold must be within the slot catalog size")
	}
	if strings.TrimSpace(c.Scheduling.DefaultTechnicianID) == "" {
		problems = append(problems, "scheduling.default_technician_id is required")
	}
	if c.Database.Enabled && c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required when database is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
