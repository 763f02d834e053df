package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Addr string
}

// AttendanceConfig - настройки, которые ядро потребляет, но которыми не владеет:
// политика перерывов, обязательность work_summary и период опроса статуса
type AttendanceConfig struct {
	AllowBreaks          bool
	RequireDocumentation bool
	PollInterval         time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "attendance"),
			Password: getEnv("DB_PASSWORD", "attendance"),
			DBName:   getEnv("DB_NAME", "team_attendance"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Attendance: AttendanceConfig{
			AllowBreaks:          getBoolEnv("ALLOW_BREAKS", true),
			RequireDocumentation: getBoolEnv("REQUIRE_DOCUMENTATION", false),
			PollInterval:         time.Duration(getIntEnv("POLL_INTERVAL_SECONDS", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
