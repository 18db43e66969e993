/*
Package configs is responsible for loading and parsing the application's configuration settings.

All settings are read from environment variables, with development-friendly
defaults for everything except production secrets.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	JWTSecret      string

	// Model Service Settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Conversation Settings
	FormatReplies bool

	// Credential Store Settings. DatabaseDSN is optional: when empty the
	// server runs with the in-memory store seeded with the bootstrap account.
	DatabaseDSN       string
	BootstrapUsername string
	BootstrapPassword string
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary
// type conversions and validation. It returns a pointer to the AppConfig struct
// and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if cfg.Environment == "development" {
		if jwtSecret == "" {
			jwtSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if jwtSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}
	cfg.JWTSecret = jwtSecret

	// --- Model Service Settings ---
	cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.openai.com"
	}

	cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	if cfg.LLMAPIKey == "" && cfg.Environment != "development" {
		return nil, fmt.Errorf("LLM_API_KEY environment variable is required in %s environment", cfg.Environment)
	}

	cfg.LLMModel = os.Getenv("LLM_MODEL")
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o"
	}

	timeoutStr := os.Getenv("LLM_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "60"
	}
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS environment variable: %q", timeoutStr)
	}
	cfg.LLMTimeout = time.Duration(timeoutSec) * time.Second

	// --- Conversation Settings ---
	formatStr := os.Getenv("FORMAT_REPLIES")
	if formatStr == "" {
		cfg.FormatReplies = true
	} else {
		formatReplies, err := strconv.ParseBool(formatStr)
		if err != nil {
			return nil, fmt.Errorf("invalid FORMAT_REPLIES environment variable: %q", formatStr)
		}
		cfg.FormatReplies = formatReplies
	}

	// --- Credential Store Settings ---
	cfg.DatabaseDSN = os.Getenv("DATABASE_URL")

	cfg.BootstrapUsername = os.Getenv("BOOTSTRAP_USERNAME")
	cfg.BootstrapPassword = os.Getenv("BOOTSTRAP_PASSWORD")

	if cfg.DatabaseDSN == "" {
		// In-memory mode needs the bootstrap account; only development gets defaults.
		if cfg.Environment == "development" {
			if cfg.BootstrapUsername == "" {
				cfg.BootstrapUsername = "admin"
			}
			if cfg.BootstrapPassword == "" {
				cfg.BootstrapPassword = "carai-admin"
			}
		} else if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
			return nil, fmt.Errorf("BOOTSTRAP_USERNAME and BOOTSTRAP_PASSWORD environment variables are required in %s environment when DATABASE_URL is not set", cfg.Environment)
		}
	}

	return cfg, nil
}
