package config

import (
	"fmt"
	"os"
)

// Config собирает настройки приложения из переменных окружения.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	PoolSize   int // максимальное число одновременных подключений к базе
	APIPort    string
	LogLevel   string
	LogFormat  string
}

// Load читает параметры подключения к БД и сервера из переменных окружения,
// подставляя значения по умолчанию для локального запуска.
func Load() *Config {
	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASS"),
		DBName:     getenv("DB_NAME", "taipei_day_trip"),
		PoolSize:   5,
		APIPort:    getenv("API_PORT", "8080"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFormat:  getenv("LOG_FORMAT", "json"),
	}
}

// DSN собирает строку подключения к PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
