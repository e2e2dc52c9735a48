package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/config"
	"github.com/zakatech/zakat-service/internal/models"
	"github.com/zakatech/zakat-service/internal/repository"
	"github.com/zakatech/zakat-service/internal/utils/email"
	"github.com/zakatech/zakat-service/internal/zakat"
	"golang.org/x/crypto/bcrypt"
)

// Service handles business logic
type Service struct {
	repo       *repository.Repository
	log        *logrus.Logger
	config     *config.Config
	nisab      *zakat.NisabSource
	predictor  zakat.Predictor
	forecaster zakat.Forecaster
	mailer     *email.Sender
	now        func() time.Time
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config,
	nisab *zakat.NisabSource, predictor zakat.Predictor, forecaster zakat.Forecaster,
	mailer *email.Sender) *Service {
	return &Service{
		repo:       repo,
		log:        log,
		config:     cfg,
		nisab:      nisab,
		predictor:  predictor,
		forecaster: forecaster,
		mailer:     mailer,
		now:        time.Now,
	}
}

// Register creates a new user with hashed password
func (s *Service) Register(emailAddr, password, fullName string) (*models.User, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" || fullName == "" {
		return nil, fmt.Errorf("email and full name are required")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        emailAddr,
		FullName:     fullName,
		Role:         "user",
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(emailAddr, password string) (string, *models.User, error) {
	user, err := s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": user.Role,
		"exp":  jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, user, nil
}

// Me returns the authenticated user's account details
func (s *Service) Me(userID int64) (*models.User, error) {
	return s.repo.FindUserByID(userID)
}

// SeedDemoUsers creates demo accounts when the users table is empty
func (s *Service) SeedDemoUsers() error {
	count, err := s.repo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		email, password, name, role string
	}{
		{"admin@zakatech.example", "admin123", "Admin User", "admin"},
		{"user@zakatech.example", "user123", "Demo Muzakki", "user"},
	}
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		u := &models.User{Email: d.email, FullName: d.name, Role: d.role, PasswordHash: string(hash)}
		if err := s.repo.CreateUser(u); err != nil {
			return err
		}
	}
	s.log.Info("Demo users created")
	return nil
}
