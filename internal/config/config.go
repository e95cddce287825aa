package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting the server needs.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RazorpayKeyID     string
	RazorpayKeySecret string

	// Registration fee per member, in rupees.
	ChargePerMember float64

	HTTPAddr string
	AppEnv   string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	AllowedOrigins []string
}

// FromEnv loads .env (if present) and builds a validated Config.
func FromEnv() (Config, error) {
	// Missing .env is fine in deployed environments where real env vars are set.
	_ = godotenv.Load()

	var c Config
	c.DBUser = strings.TrimSpace(os.Getenv("DB_USER"))
	c.DBPassword = os.Getenv("DB_PASSWORD")
	c.DBHost = strings.TrimSpace(os.Getenv("DB_HOST"))
	c.DBPort = strings.TrimSpace(os.Getenv("DB_PORT"))
	c.DBName = strings.TrimSpace(os.Getenv("DB_NAME"))

	c.RazorpayKeyID = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID"))
	c.RazorpayKeySecret = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET"))

	c.ChargePerMember = 100
	if raw := strings.TrimSpace(os.Getenv("CHARGE_PER_MEMBER")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return c, fmt.Errorf("CHARGE_PER_MEMBER must be a positive number, got %q", raw)
		}
		c.ChargePerMember = v
	}

	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}

	c.AppEnv = strings.TrimSpace(os.Getenv("APP_ENV"))
	if c.AppEnv == "" {
		c.AppEnv = "development"
	}

	c.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	c.AdminEmail = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	c.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	c.AllowedOrigins = parseOrigins(os.Getenv("ALLOWED_ORIGINS"))

	if c.DBUser == "" || c.DBHost == "" || c.DBPort == "" || c.DBName == "" {
		return c, fmt.Errorf("database configuration incomplete: DB_USER, DB_HOST, DB_PORT and DB_NAME are required")
	}
	if c.RazorpayKeyID == "" || c.RazorpayKeySecret == "" {
		return c, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
	}
	if c.JWTSecret == "" {
		return c, fmt.Errorf("JWT_SECRET is required")
	}

	return c, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func parseOrigins(raw string) []string {
	var origins []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, strings.TrimRight(p, "/"))
		}
	}
	return origins
}
