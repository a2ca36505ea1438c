package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	ServerPort   string
	AIServiceURL string
	AITimeout    time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "tasks_user"),
		DBPassword:   getEnv("DB_PASSWORD", "tasks_pass"),
		DBName:       getEnv("DB_NAME", "tasks_db"),
		ServerPort:   getEnv("SERVER_PORT", "4000"),
		AIServiceURL: getEnv("AI_SERVICE_URL", "http://localhost:8001"),
		AITimeout:    time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 3)) * time.Second,
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("⚠️  Invalid value for %s, using default %d", key, defaultVal)
	}
	return defaultVal
}
