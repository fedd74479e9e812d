package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/config"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

// RegistrationProfile - ролевые поля профиля при регистрации
type RegistrationProfile struct {
	// resident
	NIK   string
	Phone string
	// institution
	Latitude  float64
	Longitude float64
	// driver
	InstitutionID int64
	Position      string
}

// RegisterInput - данные регистрации пользователя
type RegisterInput struct {
	Name     string
	Address  string
	Email    string
	Password string
	Role     models.Role
	Profile  RegistrationProfile
}

// AuthService определяет контракт регистрации и входа
type AuthService interface {
	Register(ctx context.Context, in *RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type authService struct {
	actors ActorRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(actors ActorRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		actors: actors,
		logger: logger,
		cfg:    cfg,
	}
}

// Register создает пользователя с ролевым профилем и bcrypt-хэшем пароля
func (s *authService) Register(ctx context.Context, in *RegisterInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   in.Email,
		"role":    in.Role,
	})
	log.Info("Attempting to register a new user")

	if !in.Role.Valid() {
		return nil, apperrors.Invalidf("unknown role %q", in.Role)
	}
	if in.Role == models.RoleDriver {
		exists, err := s.actors.InstitutionExists(ctx, in.Profile.InstitutionID)
		if err != nil {
			log.WithError(err).Error("Failed to check institution existence")
			return nil, fmt.Errorf("service: could not check institution: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFoundf("institution with id %d", in.Profile.InstitutionID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Address:  in.Address,
		Email:    in.Email,
		Password: string(hash),
		Role:     in.Role,
	}
	if err := s.actors.CreateUser(ctx, user, &in.Profile); err != nil {
		log.WithError(err).Warn("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет пароль и выдает подписанный JWT с user_id и ролью
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.actors.GetUserByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Login attempt for unknown email")
		// Неизвестный email и неверный пароль неразличимы для вызывающего
		return "", nil, apperrors.Invalidf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Warn("Login attempt with invalid password")
		return "", nil, apperrors.Invalidf("invalid email or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign JWT")
		return "", nil, fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWTTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
