package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	InternalAPIKey string

	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

// StoreConfig tunes the shared write lock and the settings cache.
type StoreConfig struct {
	LockWait    time.Duration
	SettingsTTL time.Duration
	SessionTTL  time.Duration
}

// Load reads configuration from environment variables, with a best-effort
// .env file load for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:    getenv("ENVIRONMENT", "development"),
		InternalAPIKey: getenv("INTERNAL_API_KEY", ""),
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			ReadTimeout:  getduration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getduration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getduration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getenv("DB_HOST", "localhost"),
			Port:            getint("DB_PORT", 3306),
			User:            getenv("DB_USER", "root"),
			Password:        getenv("DB_PASSWORD", ""),
			Name:            getenv("DB_NAME", "daigou"),
			MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getduration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getint("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getint("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getbool("RABBITMQ_ENABLED", false),
			Host:     getenv("RABBITMQ_HOST", "localhost"),
			Port:     getint("RABBITMQ_PORT", 5672),
			User:     getenv("RABBITMQ_USER", "guest"),
			Password: getenv("RABBITMQ_PASSWORD", "guest"),
		},
		Store: StoreConfig{
			LockWait:    getduration("STORE_LOCK_WAIT", 5*time.Second),
			SettingsTTL: getduration("SETTINGS_CACHE_TTL", 10*time.Minute),
			SessionTTL:  getduration("ADMIN_SESSION_TTL", 10*time.Minute),
		},
	}
}

// GetDSN builds the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Asia%%2FTaipei",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
