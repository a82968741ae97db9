package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sbindex/internal/model"
	"sbindex/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles account registration and JWT authentication
type AuthService struct {
	userRepo   repository.UserRepo
	jwtSecret  []byte
	adminEmail string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepo) *AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@test.com"
	}

	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(secret),
		adminEmail: strings.ToLower(adminEmail),
	}
}

// Register validates and creates a new account
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashPassword(password),
		Name:         strings.TrimSpace(name),
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckEmail reports whether an email is available for registration
func (s *AuthService) CheckEmail(ctx context.Context, email string) (available bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return false, ErrInvalidEmail
	}
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash != hashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	isAdmin := email == s.adminEmail
	claims := &model.UserClaims{
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}

// ValidateToken validates a user JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
