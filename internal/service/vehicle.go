package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

// VehicleRepository определяет контракт для работы с бд машин
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	ListByInstitution(ctx context.Context, institutionID int64, ready *bool) ([]*models.Vehicle, error)
}

// RegisterVehicleInput - данные регистрации машины учреждения
type RegisterVehicleInput struct {
	DriverID    int64
	Name        string
	Description string
	Picture     string
}

// VehicleService определяет контракт управления парком машин учреждения
type VehicleService interface {
	Register(ctx context.Context, userID int64, in *RegisterVehicleInput) (*models.Vehicle, error)
	ListForInstitution(ctx context.Context, userID int64, ready *bool) ([]*models.Vehicle, error)
}

type vehicleService struct {
	repo   VehicleRepository
	actors ActorRepository
	logger *logrus.Logger
}

func NewVehicleService(repo VehicleRepository, actors ActorRepository, logger *logrus.Logger) VehicleService {
	return &vehicleService{
		repo:   repo,
		actors: actors,
		logger: logger,
	}
}

// Register регистрирует машину в парке учреждения вызывающего пользователя
func (s *vehicleService) Register(ctx context.Context, userID int64, in *RegisterVehicleInput) (*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "vehicle",
		"method":  "Register",
		"user_id": userID,
		"name":    in.Name,
	})
	log.Info("Attempting to register a new vehicle")

	institution, err := s.actors.InstitutionByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no institution profile")
		return nil, fmt.Errorf("service: could not resolve institution: %w", err)
	}

	vehicle := &models.Vehicle{
		InstitutionID: institution.ID,
		DriverID:      in.DriverID,
		Name:          in.Name,
		Description:   in.Description,
		Picture:       in.Picture,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		log.WithError(err).Error("Failed to create vehicle in repository")
		return nil, fmt.Errorf("service: could not create vehicle: %w", err)
	}

	log.WithField("vehicle_id", vehicle.ID).Info("Vehicle registered successfully")
	return vehicle, nil
}

// ListForInstitution возвращает машины учреждения вызывающего пользователя
func (s *vehicleService) ListForInstitution(ctx context.Context, userID int64, ready *bool) ([]*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "vehicle",
		"method":  "ListForInstitution",
		"user_id": userID,
	})

	institution, err := s.actors.InstitutionByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no institution profile")
		return nil, fmt.Errorf("service: could not resolve institution: %w", err)
	}

	vehicles, err := s.repo.ListByInstitution(ctx, institution.ID, ready)
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles from repository")
		return nil, fmt.Errorf("service: could not list vehicles: %w", err)
	}

	log.WithField("count", len(vehicles)).Info("Vehicles listed successfully")
	return vehicles, nil
}
