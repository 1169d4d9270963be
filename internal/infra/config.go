package infra

import "os"

// Config collects every environment value the app reads, so components get
// their settings injected instead of reaching for os.Getenv themselves.
type Config struct {
	Port        string
	PostgresURL string

	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	LiveKitAPIKey    string
	LiveKitAPISecret string
	LiveKitURL       string

	AuthJWTSecret string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:             os.Getenv("PORT"),
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		AIProvider:       os.Getenv("AI_PROVIDER"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
		LiveKitAPIKey:    os.Getenv("LIVEKIT_API_KEY"),
		LiveKitAPISecret: os.Getenv("LIVEKIT_API_SECRET"),
		LiveKitURL:       os.Getenv("LIVEKIT_URL"),
		AuthJWTSecret:    os.Getenv("AUTH_JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AIProvider == "" {
		cfg.AIProvider = "gemini"
	}
	return cfg
}
