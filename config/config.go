package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DBPath        string
	LLMEndpoint   string
	LLMAPIKey     string
	LLMModel      string
	GenTimeoutSec int
	CropTableXLSX string
	Country       string
	EnableAuth    bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "krishi.db"),
		LLMEndpoint:   get("LLM_ENDPOINT", ""),
		LLMAPIKey:     get("LLM_API_KEY", ""),
		LLMModel:      get("LLM_MODEL", "gpt-4o-mini"),
		GenTimeoutSec: getInt("GEN_TIMEOUT_SEC", 30),
		CropTableXLSX: get("CROP_TABLE_XLSX", ""),
		Country:       get("COUNTRY", "BD"),
		EnableAuth:    get("ENABLE_AUTH", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s llm_configured=%t country=%s", cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "", cfg.Country)
	return cfg
}
