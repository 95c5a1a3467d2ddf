package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	LogLevel    string
	Port        uint16
	StaticDir   string
	CORSOrigins []string
	SanMar      SanMarConfig
}

// SanMarConfig holds the vendor endpoints and credentials. The REST base
// URL serves search and slug inventory; the two SOAP endpoints serve the
// legacy style/color/size service and the PromoStandards inventory service.
type SanMarConfig struct {
	BaseURL                string
	StandardEndpoint       string
	PromoStandardsEndpoint string
	CustomerNumber         string
	Username               string
	Password               string
	// Cookie is an optional session cookie forwarded on REST requests when
	// the vendor site starts challenging anonymous traffic.
	Cookie  string
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:         getEnv("ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnvInt("PORT", 3001),
		StaticDir:   getEnv("STATIC_DIR", "./web/dist"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		SanMar: SanMarConfig{
			BaseURL:                getEnv("SANMAR_BASE_URL", "https://www.sanmar.com"),
			StandardEndpoint:       getEnv("SANMAR_STANDARD_ENDPOINT", "https://ws.sanmar.com:8080/SanMarWebService/SanMarWebServicePort"),
			PromoStandardsEndpoint: getEnv("SANMAR_PROMOSTANDARDS_ENDPOINT", "https://ws.sanmar.com:8080/promostandards/InventoryServiceBindingV2final"),
			CustomerNumber:         getEnv("SANMAR_CUSTOMER_NUMBER", ""),
			Username:               getEnv("SANMAR_USERNAME", ""),
			Password:               getEnv("SANMAR_PASSWORD", ""),
			Cookie:                 getEnv("SANMAR_COOKIE", ""),
			Timeout:                time.Duration(getEnvInt("SANMAR_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// SOAP credentials are optional in dev (the chain just falls through to
	// the REST endpoints), mandatory in prod.
	if cfg.Env == "prod" && (cfg.SanMar.Username == "" || cfg.SanMar.Password == "") {
		return nil, fmt.Errorf("SANMAR_USERNAME and SANMAR_PASSWORD must be set in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
