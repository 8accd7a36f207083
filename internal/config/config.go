package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	// Meta WhatsApp Business API
	WhatsAppAccessToken   string
	WhatsAppVerifyToken   string
	WhatsAppPhoneNumberID string
	WhatsAppGraphBaseURL  string

	// Question generator
	QuestionProvider string // "gemini", "bedrock", or "static"
	GeminiAPIKey     string
	GeminiModelID    string
	BedrockModelID   string

	// Scheduling backend (record sink + clinician directory)
	SchedulingAPIEndpoint string
	SchedulingAPIKey      string
	SchedulingHTTPTimeout time.Duration

	// Conversation store
	StoreBackend  string // "memory", "redis", or "dynamodb"
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	RecordTTL     time.Duration
	IntakeTable   string

	// AWS (DynamoDB store, Bedrock generator)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Audit archive
	DatabaseURL string

	// Intake behavior
	TriageQuestionCap int

	// Auth for non-public endpoints
	AdminJWTSecret string
	DevSimToken    string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		WhatsAppAccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		WhatsAppVerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
		WhatsAppPhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		WhatsAppGraphBaseURL:  getEnv("WHATSAPP_GRAPH_BASE_URL", "https://graph.facebook.com/v18.0"),

		QuestionProvider: strings.ToLower(strings.TrimSpace(getEnv("QUESTION_PROVIDER", "gemini"))),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:    getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		BedrockModelID:   getEnv("BEDROCK_MODEL_ID", ""),

		SchedulingAPIEndpoint: getEnv("SCHEDULING_API_ENDPOINT", ""),
		SchedulingAPIKey:      getEnv("SCHEDULING_API_KEY", ""),
		SchedulingHTTPTimeout: getEnvAsDuration("SCHEDULING_HTTP_TIMEOUT", 10*time.Second),

		StoreBackend:  strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", "memory"))),
		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		RecordTTL:     getEnvAsDuration("RECORD_TTL", 30*24*time.Hour),
		IntakeTable:   getEnv("INTAKE_TABLE", "intake_conversations"),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		TriageQuestionCap: getEnvAsInt("TRIAGE_QUESTION_CAP", 3),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		DevSimToken:    getEnv("DEV_SIM_TOKEN", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
