package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	FrontendURL        string
	MongoDBURI         string
	MongoDBDatabase    string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	SyncSchedule       string
	SyncQuery          string
	SyncMaxResults     int64
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		MongoDBURI:         getEnv("MONGODB_URI", ""),
		MongoDBDatabase:    getEnv("MONGODB_DATABASE", "shipdesk"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken: getEnv("GOOGLE_REFRESH_TOKEN", ""),
		SyncSchedule:       getEnv("SYNC_SCHEDULE", "@every 10m"),
		SyncQuery:          getEnv("SYNC_QUERY", "in:inbox"),
		SyncMaxResults:     50,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
