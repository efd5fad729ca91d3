package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI          string
	DBName            string
	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration
	MediaBucket       string
	WhatsAppNumber    string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", ""),
		DBName:            getEnvOrDefault("DB_NAME", "stacko"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AdminPassword:     getEnvOrDefault("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		AdminTokenTTL:     getDurationEnv("ADMIN_TOKEN_TTL", 12, time.Hour),
		MediaBucket:       getEnvOrDefault("MEDIA_BUCKET", "product-images"),
		WhatsAppNumber:    getEnvOrDefault("WHATSAPP_NUMBER", "919987744781"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
