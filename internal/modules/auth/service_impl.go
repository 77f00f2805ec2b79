package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionTTL matches the cookie lifetime the shop has always used.
const SessionTTL = 8 * time.Hour

// Config carries the single operator account. The shop has exactly one
// login; credentials come from the environment, not from a collection.
type Config struct {
	Username     string
	PasswordHash string // bcrypt hash of the operator password
	JWTSecret    []byte
}

type service struct {
	cfg Config
}

// NewService creates a new auth service.
func NewService(cfg Config) Service {
	return &service{cfg: cfg}
}

// HashPassword bcrypt-hashes a plaintext password, for deployments that
// configure the password directly instead of a precomputed hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.cfg.Username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(SessionTTL)
	claims := &jwt.StandardClaims{
		Subject:   username,
		Id:        uuid.New().String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *service) Verify(tokenString string) error {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidCredentials
	}
	return nil
}
