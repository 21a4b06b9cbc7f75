package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Auth errors.
var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingJWTSecret   = errors.New("JWT secret is not configured")
)

// User is the authenticated identity carried in issued tokens.
type User struct {
	Username string `json:"username"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthConfig is the explicit credential/signing configuration. It is
// constructed once at startup and injected; there is no process-wide
// signing singleton, so tests can use distinct secrets per case.
type AuthConfig struct {
	Secret       string
	TokenExpiry  time.Duration
	Username     string
	PasswordHash []byte
}

// AuthService verifies credentials and issues/validates bearer tokens.
// Tokens are HS256 JWTs that expire after AuthConfig.TokenExpiry.
type AuthService interface {
	// Login authenticates a user and returns a signed token.
	Login(username, password string) (*AuthResponse, error)
	// VerifyToken validates a bearer token and returns its identity.
	VerifyToken(token string) (*User, error)
}

type authService struct {
	cfg AuthConfig
}

// NewAuthService creates a new auth service. The secret is required;
// refusing to start beats silently issuing forgeable tokens.
func NewAuthService(cfg AuthConfig) (AuthService, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &authService{cfg: cfg}, nil
}

// HashPassword hashes a plaintext password for AuthConfig.PasswordHash.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (s *authService) Login(username, password string) (*AuthResponse, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if username != s.cfg.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.cfg.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(username)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  &User{Username: username},
	}, nil
}

func (s *authService) VerifyToken(tokenString string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return nil, ErrInvalidToken
	}

	return &User{Username: username}, nil
}

func (s *authService) generateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}
