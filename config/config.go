package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Shadow dispatch modes. "managed" talks to a device-shadow HTTP service,
// "broadcast" publishes command envelopes on the shared telemetry topic.
const (
	ShadowModeManaged   = "managed"
	ShadowModeBroadcast = "broadcast"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MQTT
	MQTTBroker      string
	MQTTClientID    string
	MQTTUsername    string
	MQTTPassword    string
	MQTTSharedTopic string

	// Shadow service
	ShadowMode   string
	ShadowAPIURL string

	// Push provider
	PushAPIURL string

	// Auth
	JWTSecret string

	// Application
	HTTPPort      string
	LogLevel      string
	Timeout       time.Duration
	WifiStatusTTL time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	timeoutSec, _ := strconv.Atoi(getEnv("TIMEOUT_SECONDS", "10"))
	wifiTTLSec, _ := strconv.Atoi(getEnv("WIFI_STATUS_TTL_SECONDS", "3600"))

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "senso"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		MQTTBroker:      getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTClientID:    getEnv("MQTT_CLIENT_ID", "senso-backend"),
		MQTTUsername:    getEnv("MQTT_USERNAME", ""),
		MQTTPassword:    getEnv("MQTT_PASSWORD", ""),
		MQTTSharedTopic: getEnv("MQTT_SHARED_TOPIC", "sdk/test/js"),

		ShadowMode:   getEnv("SHADOW_MODE", ShadowModeBroadcast),
		ShadowAPIURL: getEnv("SHADOW_API_URL", ""),

		PushAPIURL: getEnv("PUSH_API_URL", "https://exp.host/--/api/v2/push/send"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timeout:       time.Duration(timeoutSec) * time.Second,
		WifiStatusTTL: time.Duration(wifiTTLSec) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
