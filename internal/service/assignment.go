package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/webhook"
)

// AssignmentRepository определяет контракт для работы с назначениями машин.
// Arrive и Complete обязаны находить назначение по (инцидент, машина
// водителя, ожидаемый текущий статус) одним условным обновлением.
type AssignmentRepository interface {
	Arrive(ctx context.Context, incidentID, driverID int64) (*models.IncidentVehicleAssignment, error)
	Complete(ctx context.Context, incidentID, driverID int64) (*models.IncidentVehicleAssignment, error)
	ListIncidentsByDriver(ctx context.Context, driverID int64, status models.AssignmentStatus) ([]*models.Incident, error)
}

// AssignmentService определяет контракт действий водителя над назначением.
// Ни одно из действий не финализирует родительский инцидент: закрытие -
// отдельное действие учреждения.
type AssignmentService interface {
	Arrive(ctx context.Context, userID, incidentID int64) (*models.IncidentVehicleAssignment, error)
	Complete(ctx context.Context, userID, incidentID int64) (*models.IncidentVehicleAssignment, error)
	ListForDriver(ctx context.Context, userID int64, status models.AssignmentStatus) ([]*models.Incident, error)
	GetForDriver(ctx context.Context, userID, incidentID int64) (*models.IncidentDetail, error)
}

type assignmentService struct {
	repo         AssignmentRepository
	incidentRepo IncidentRepository
	actors       ActorRepository
	logger       *logrus.Logger
	publisher    webhook.Publisher
}

func NewAssignmentService(repo AssignmentRepository, incidentRepo IncidentRepository, actors ActorRepository, logger *logrus.Logger, publisher webhook.Publisher) AssignmentService {
	return &assignmentService{
		repo:         repo,
		incidentRepo: incidentRepo,
		actors:       actors,
		logger:       logger,
		publisher:    publisher,
	}
}

func (s *assignmentService) publish(ctx context.Context, event webhook.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish lifecycle event")
	}
}

func (s *assignmentService) advance(ctx context.Context, userID, incidentID int64, method string, eventType webhook.EventType,
	op func(ctx context.Context, incidentID, driverID int64) (*models.IncidentVehicleAssignment, error)) (*models.IncidentVehicleAssignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      method,
		"user_id":     userID,
		"incident_id": incidentID,
	})
	log.Info("Attempting to advance assignment")

	driver, err := s.actors.DriverByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no driver profile")
		return nil, fmt.Errorf("service: could not resolve driver: %w", err)
	}

	assignment, err := op(ctx, incidentID, driver.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to advance assignment in repository")
		return nil, fmt.Errorf("service: could not advance assignment: %w", err)
	}

	if err := s.incidentRepo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := webhook.NewEvent(eventType, incidentID, string(assignment.Status))
	event.VehicleIDs = []int64{assignment.VehicleID}
	s.publish(ctx, event)

	log.WithField("assignment_id", assignment.ID).Info("Assignment advanced successfully")
	return assignment, nil
}

// Arrive отмечает прибытие машины водителя: ON_ROUTE -> ARRIVED
func (s *assignmentService) Arrive(ctx context.Context, userID, incidentID int64) (*models.IncidentVehicleAssignment, error) {
	return s.advance(ctx, userID, incidentID, "Arrive", webhook.EventAssignmentArrived, s.repo.Arrive)
}

// Complete отмечает завершение работы машины водителя: ARRIVED -> COMPLETED
func (s *assignmentService) Complete(ctx context.Context, userID, incidentID int64) (*models.IncidentVehicleAssignment, error) {
	return s.advance(ctx, userID, incidentID, "Complete", webhook.EventAssignmentCompleted, s.repo.Complete)
}

// ListForDriver возвращает инциденты, назначенные машине водителя
func (s *assignmentService) ListForDriver(ctx context.Context, userID int64, status models.AssignmentStatus) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "assignment",
		"method":  "ListForDriver",
		"user_id": userID,
		"status":  status,
	})

	if status != "" && !status.Valid() {
		return nil, apperrors.Invalidf("unknown assignment status %q", status)
	}

	driver, err := s.actors.DriverByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no driver profile")
		return nil, fmt.Errorf("service: could not resolve driver: %w", err)
	}

	incidents, err := s.repo.ListIncidentsByDriver(ctx, driver.ID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list driver incidents from repository")
		return nil, fmt.Errorf("service: could not list driver incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Driver incidents listed successfully")
	return incidents, nil
}

// GetForDriver возвращает детальную карточку инцидента, на который назначена
// машина вызывающего водителя, сначала пробуя кэш
func (s *assignmentService) GetForDriver(ctx context.Context, userID, incidentID int64) (*models.IncidentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "GetForDriver",
		"user_id":     userID,
		"incident_id": incidentID,
	})

	driver, err := s.actors.DriverByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no driver profile")
		return nil, fmt.Errorf("service: could not resolve driver: %w", err)
	}

	detail, err := s.incidentRepo.GetIncidentFromCache(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident cache lookup failed")
	}
	if detail == nil {
		detail, err = s.incidentRepo.GetDetail(ctx, incidentID)
		if err != nil {
			log.WithError(err).Warn("Failed to get incident from repository")
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.incidentRepo.SetIncidentCache(ctx, detail); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}

	// Инцидент без назначения на машину водителя неотличим от несуществующего
	assigned := false
	for _, a := range detail.Assignments {
		if a.DriverID == driver.ID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, apperrors.NotFoundf("incident with id %d", incidentID)
	}

	log.Info("Incident fetched successfully")
	return detail, nil
}
