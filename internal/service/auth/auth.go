package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nikhil/hackfest/internal/config"
	"github.com/nikhil/hackfest/pkg/utils"
)

// ErrInvalidCredentials is returned for wrong email/password combinations.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the organizer admin account configured via env.
type AuthService struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: cfg.AdminPasswordHash,
		jwtSecret:         cfg.JWTSecret,
	}
}

// Login checks admin credentials and issues a JWT on success.
func (s *AuthService) Login(email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", errors.New("admin account is not configured")
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return "", ErrInvalidCredentials
	}
	if err := utils.CheckPassword(s.adminPasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.GenerateJWT(s.adminEmail)
}

// GenerateJWT creates a JWT token for authentication
func (s *AuthService) GenerateJWT(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(s.jwtSecret))
}
