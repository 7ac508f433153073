package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything main reads from the environment. Values from .env
// override the process environment, matching how the dev setups run.
type Config struct {
	Port   string
	DBName string

	MongoURI  string
	JWTSecret string

	// AdminTokenTTL and EmployeeTokenTTL intentionally stay two knobs: the
	// deployed defaults (10 days vs 1 hour) disagree and ops may want to fix
	// that without a rebuild.
	AdminTokenTTL    time.Duration
	EmployeeTokenTTL time.Duration

	// PublicBaseURL is the frontend origin the QR codes point at.
	PublicBaseURL   string
	FrontendOrigins string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	LogFormat string
}

func Load() (Config, error) {
	// Missing .env is fine: container environments set real env vars instead.
	_ = godotenv.Overload(".env")

	adminTTL, err := getEnvDuration("ADMIN_TOKEN_TTL", 240*time.Hour)
	if err != nil {
		return Config{}, err
	}
	employeeTTL, err := getEnvDuration("EMPLOYEE_TOKEN_TTL", time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             getEnv("PORT", "5000"),
		DBName:           getEnv("DB_NAME", "qrakhsa"),
		MongoURI:         os.Getenv("MONGO_URI"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminTokenTTL:    adminTTL,
		EmployeeTokenTTL: employeeTTL,
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
		FrontendOrigins:  getEnv("FRONTEND_ORIGINS", "http://localhost:5173"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDuration rejects malformed values instead of quietly using the
// default: a token-TTL typo should stop the boot, not shrink or stretch every
// session unnoticed.
func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
