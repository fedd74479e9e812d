package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/config"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	svc "github.com/ardnsyh/emergency_dispatch_system/internal/service"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service/mocks"
)

func newTestAuthService(t *testing.T) (*svc.AuthServiceImpl, *mocks.MockActorRepository) {
	ctrl := gomock.NewController(t)
	actorsMock := mocks.NewMockActorRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	service := svc.NewAuthService(actorsMock, logger, cfg)
	return service.(*svc.AuthServiceImpl), actorsMock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, actorsMock := newTestAuthService(t)
	ctx := context.Background()
	input := &svc.RegisterInput{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Password: "correct-horse",
		Role:     models.RoleResident,
		Profile:  svc.RegistrationProfile{NIK: "3171234567890001", Phone: "+62811111111"},
	}

	// Ожидания
	actorsMock.EXPECT().
		CreateUser(ctx, gomock.Any(), &input.Profile).
		DoAndReturn(func(ctx context.Context, user *models.User, profile *svc.RegistrationProfile) error {
			user.ID = 7
			return nil
		}).Times(1)

	// Действие
	user, err := service.Register(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	// Пароль сохраняется только в виде bcrypt-хэша
	assert.NotEqual(t, input.Password, user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
}

func TestRegister_UnknownRole(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)
	ctx := context.Background()

	// Действие
	user, err := service.Register(ctx, &svc.RegisterInput{
		Email:    "x@example.com",
		Password: "password1",
		Role:     models.Role("admin"),
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegister_DriverUnknownInstitution(t *testing.T) {
	// Подготовка
	service, actorsMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().InstitutionExists(ctx, int64(99)).Return(false, nil).Times(1)

	// Действие
	user, err := service.Register(ctx, &svc.RegisterInput{
		Email:    "driver@example.com",
		Password: "password1",
		Role:     models.RoleDriver,
		Profile:  svc.RegistrationProfile{InstitutionID: 99},
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, actorsMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Ожидания
	actorsMock.EXPECT().
		GetUserByEmail(ctx, "ivan@example.com").
		Return(&models.User{ID: 7, Email: "ivan@example.com", Password: string(hash), Role: models.RoleResident}, nil).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "ivan@example.com", "correct-horse")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "resident", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, actorsMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Ожидания
	actorsMock.EXPECT().
		GetUserByEmail(ctx, "ivan@example.com").
		Return(&models.User{ID: 7, Password: string(hash)}, nil).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "ivan@example.com", "wrong")

	// Проверки
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка: неизвестный email дает ту же ошибку, что и неверный пароль
	service, actorsMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().
		GetUserByEmail(ctx, "ghost@example.com").
		Return(nil, apperrors.NotFoundf("user with email ghost@example.com")).
		Times(1)

	// Действие
	token, user, err := service.Login(ctx, "ghost@example.com", "whatever")

	// Проверки
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
