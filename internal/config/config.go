package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Batch    BatchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	BodyLimitMB        int
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

type AIConfig struct {
	Provider      string // "gemini" or "ollama"
	Model         string
	GeminiAPIKey  string
	OllamaBaseURL string
}

type BatchConfig struct {
	SourceDir string
	OutputDir string
	Delay     time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			BodyLimitMB:        getEnvAsInt("BODY_LIMIT_MB", 10),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "default_secret"),
			TokenExpiry: time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "gemini"),
			Model:         getEnv("LLM_MODEL", "gemini-2.5-flash-lite"),
			GeminiAPIKey:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Batch: BatchConfig{
			SourceDir: getEnv("BATCH_SOURCE_DIR", "full_texts"),
			OutputDir: getEnv("BATCH_OUTPUT_DIR", "model_summaries"),
			Delay:     time.Duration(getEnvAsInt("BATCH_DELAY_SECONDS", 1)) * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
