package config

import (
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "hackfest")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "hackfest")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("CHARGE_PER_MEMBER", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("ALLOWED_ORIGINS", "")
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.ChargePerMember != 100 {
		t.Errorf("expected default charge 100, got %v", cfg.ChargePerMember)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestFromEnvMissingGatewayCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error for missing gateway credentials")
	}
	if !strings.Contains(err.Error(), "RAZORPAY") {
		t.Errorf("expected razorpay error, got %v", err)
	}
}

func TestFromEnvInvalidCharge(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CHARGE_PER_MEMBER", "-5")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for negative charge")
	}
}

func TestFromEnvOrigins(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://hackfest.example.com/, http://localhost:3000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := []string{"https://hackfest.example.com", "http://localhost:3000"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.AllowedOrigins[i])
		}
	}
}
