package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	DBPath            string
	SchedulerInterval time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:              GetEnv("PORT", "3000"),
		Env:               GetEnv("ENV", "development"),
		DBPath:            GetEnv("DB_PATH", "./data/reminders.db"),
		SchedulerInterval: GetDuration("SCHEDULER_INTERVAL_SECONDS", 30*time.Second),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
