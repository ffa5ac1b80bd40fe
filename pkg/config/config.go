package config

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool
	Port         string

	// persistence
	DBDriver string // "sqlite", "mysql" or "memory"
	DBPath   string // sqlite file path
	MySQLDSN string

	// generation provider selection: "gemini", "openai", "vertex" or "local"
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	VertexProject  string
	VertexLocation string
	VertexModel    string

	// runtime tunables
	HistoryLimit           int
	GenerateTimeoutSeconds int
	RateLimitWindowSeconds int
	RateLimitCapacity      int
)

// loadAppEnv loads .env for non-production environments only; in production
// everything must come from the host environment.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "production" {
		return
	}
	// a missing .env is fine for dev and tests
	_ = godotenv.Load()
}

func init() {
	loadAppEnv()

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "development"
	}
	if !slices.Contains([]string{"development", "staging", "production"}, AppEnv) {
		log.Fatal("environment variable APP_ENV must be 'development', 'staging' or 'production'")
	}
	IsProduction = AppEnv == "production"

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	DBDriver = os.Getenv("DB_DRIVER")
	if DBDriver == "" {
		DBDriver = "sqlite"
	}
	DBPath = os.Getenv("DB_PATH")
	if DBPath == "" {
		DBPath = "app.db"
	}
	MySQLDSN = os.Getenv("MYSQL_DSN")

	Provider = os.Getenv("PROVIDER")
	if Provider == "" {
		Provider = "gemini"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-2.0-flash"
	}

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	if OpenAIBaseURL == "" {
		OpenAIBaseURL = "https://api.openai.com/v1/chat/completions"
	}
	OpenAIModel = os.Getenv("OPENAI_MODEL")
	if OpenAIModel == "" {
		OpenAIModel = "gpt-4o-mini"
	}

	VertexProject = os.Getenv("VERTEX_PROJECT")
	VertexLocation = os.Getenv("VERTEX_LOCATION")
	VertexModel = os.Getenv("VERTEX_MODEL")
	if VertexModel == "" {
		VertexModel = "gemini-2.5-flash"
	}

	HistoryLimit = atoiOr(os.Getenv("HISTORY_LIMIT"), 5)
	GenerateTimeoutSeconds = atoiOr(os.Getenv("GENERATE_TIMEOUT_SECONDS"), 60)
	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)

	log.Printf("[config] AppEnv=%s Provider=%s DBDriver=%s", AppEnv, Provider, DBDriver)
	log.Printf("[config] GeminiModel=%s GeminiAPIKeyPresent=%v", GeminiModel, GeminiAPIKey != "")
	log.Printf("[config] HistoryLimit=%d GenerateTimeout=%ds RateLimit window=%ds capacity=%d",
		HistoryLimit, GenerateTimeoutSeconds, RateLimitWindowSeconds, RateLimitCapacity)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
