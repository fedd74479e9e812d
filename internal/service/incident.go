package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/webhook"
)

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Dispatch и Finalize обязаны выполнять все свои записи одной транзакцией
// и перепроверять охранные условия под блокировкой.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	GetDetail(ctx context.Context, id int64) (*models.IncidentDetail, error)
	ListByInstitution(ctx context.Context, institutionID int64, status models.IncidentStatus) ([]*models.Incident, error)
	ListByResident(ctx context.Context, residentID int64, status models.IncidentStatus) ([]*models.Incident, error)
	Reject(ctx context.Context, id int64) (*models.Incident, error)
	Dispatch(ctx context.Context, incidentID int64, vehicleIDs []int64) (*models.Incident, []*models.IncidentVehicleAssignment, error)
	Finalize(ctx context.Context, incidentID int64) (*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id int64) (*models.IncidentDetail, error)
	SetIncidentCache(ctx context.Context, detail *models.IncidentDetail) error
	InvalidateIncidentCache(ctx context.Context, id int64) error
}

// ActorRepository определяет контракт для разрешения ролевых профилей
// аутентифицированного пользователя
type ActorRepository interface {
	CreateUser(ctx context.Context, user *models.User, profile *RegistrationProfile) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ResidentByUserID(ctx context.Context, userID int64) (*models.Resident, error)
	InstitutionByUserID(ctx context.Context, userID int64) (*models.Institution, error)
	DriverByUserID(ctx context.Context, userID int64) (*models.Driver, error)
	InstitutionExists(ctx context.Context, id int64) (bool, error)
}

// ReportIncidentInput - данные заявки жителя
type ReportIncidentInput struct {
	Description string
	Latitude    float64
	Longitude   float64
	Picture     string
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидента
type IncidentService interface {
	Report(ctx context.Context, userID, institutionID int64, in *ReportIncidentInput) (*models.Incident, error)
	ListForInstitution(ctx context.Context, userID int64, status models.IncidentStatus) ([]*models.Incident, error)
	ListForResident(ctx context.Context, userID int64, status models.IncidentStatus) ([]*models.Incident, error)
	GetForInstitution(ctx context.Context, userID, incidentID int64) (*models.IncidentDetail, error)
	Dispatch(ctx context.Context, userID, incidentID int64, vehicleIDs []int64) (*models.Incident, []*models.IncidentVehicleAssignment, error)
	Reject(ctx context.Context, userID, incidentID int64) (*models.Incident, error)
	Finalize(ctx context.Context, userID, incidentID int64) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	actors    ActorRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewIncidentService(repo IncidentRepository, actors ActorRepository, logger *logrus.Logger, publisher webhook.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		actors:    actors,
		logger:    logger,
		publisher: publisher,
	}
}

// publish отправляет событие жизненного цикла best-effort: сбой публикации
// логируется и не откатывает уже зафиксированный переход
func (s *incidentService) publish(ctx context.Context, event webhook.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish lifecycle event")
	}
}

// Report создает инцидент в статусе REPORTED от имени жителя
func (s *incidentService) Report(ctx context.Context, userID, institutionID int64, in *ReportIncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "incident",
		"method":         "Report",
		"user_id":        userID,
		"institution_id": institutionID,
	})
	log.Info("Attempting to report a new incident")

	resident, err := s.actors.ResidentByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no resident profile")
		return nil, fmt.Errorf("service: could not resolve resident: %w", err)
	}

	exists, err := s.actors.InstitutionExists(ctx, institutionID)
	if err != nil {
		log.WithError(err).Error("Failed to check institution existence")
		return nil, fmt.Errorf("service: could not check institution: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFoundf("institution with id %d", institutionID)
	}

	incident := &models.Incident{
		ResidentID:    resident.ID,
		InstitutionID: institutionID,
		Description:   in.Description,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Picture:       in.Picture,
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	event := webhook.NewEvent(webhook.EventIncidentReported, incident.ID, string(incident.Status))
	event.InstitutionID = incident.InstitutionID
	s.publish(ctx, event)

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return incident, nil
}

// ListForInstitution возвращает инциденты учреждения вызывающего пользователя
func (s *incidentService) ListForInstitution(ctx context.Context, userID int64, status models.IncidentStatus) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListForInstitution",
		"user_id": userID,
		"status":  status,
	})

	if status != "" && !status.Valid() {
		return nil, apperrors.Invalidf("unknown incident status %q", status)
	}

	institution, err := s.actors.InstitutionByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no institution profile")
		return nil, fmt.Errorf("service: could not resolve institution: %w", err)
	}

	incidents, err := s.repo.ListByInstitution(ctx, institution.ID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ListForResident возвращает заявки, поданные вызывающим жителем
func (s *incidentService) ListForResident(ctx context.Context, userID int64, status models.IncidentStatus) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListForResident",
		"user_id": userID,
		"status":  status,
	})

	if status != "" && !status.Valid() {
		return nil, apperrors.Invalidf("unknown incident status %q", status)
	}

	resident, err := s.actors.ResidentByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no resident profile")
		return nil, fmt.Errorf("service: could not resolve resident: %w", err)
	}

	incidents, err := s.repo.ListByResident(ctx, resident.ID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list resident incidents from repository")
		return nil, fmt.Errorf("service: could not list resident incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Resident incidents listed successfully")
	return incidents, nil
}

// GetForInstitution возвращает детальную карточку инцидента учреждения,
// сначала пробуя кэш
func (s *incidentService) GetForInstitution(ctx context.Context, userID, incidentID int64) (*models.IncidentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetForInstitution",
		"user_id":     userID,
		"incident_id": incidentID,
	})

	institution, err := s.actors.InstitutionByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Caller has no institution profile")
		return nil, fmt.Errorf("service: could not resolve institution: %w", err)
	}

	detail, err := s.repo.GetIncidentFromCache(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident cache lookup failed")
	}
	if detail == nil {
		detail, err = s.repo.GetDetail(ctx, incidentID)
		if err != nil {
			log.WithError(err).Warn("Failed to get incident from repository")
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.repo.SetIncidentCache(ctx, detail); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}

	// Чужой инцидент неотличим от несуществующего
	if detail.InstitutionID != institution.ID {
		return nil, apperrors.NotFoundf("incident with id %d", incidentID)
	}

	log.Info("Incident fetched successfully")
	return detail, nil
}

// ownedIncident проверяет, что инцидент принадлежит учреждению вызывающего
func (s *incidentService) ownedIncident(ctx context.Context, userID, incidentID int64) (*models.Incident, error) {
	institution, err := s.actors.InstitutionByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve institution: %w", err)
	}
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.InstitutionID != institution.ID {
		return nil, apperrors.NotFoundf("incident with id %d", incidentID)
	}
	return incident, nil
}

// Dispatch назначает машины на инцидент: REPORTED -> HANDLED, по одному
// назначению ON_ROUTE на машину, каждая машина помечается занятой. Машины
// обрабатываются в порядке, заданном вызывающей стороной.
func (s *incidentService) Dispatch(ctx context.Context, userID, incidentID int64, vehicleIDs []int64) (*models.Incident, []*models.IncidentVehicleAssignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Dispatch",
		"user_id":     userID,
		"incident_id": incidentID,
		"vehicles":    vehicleIDs,
	})
	log.Info("Attempting to dispatch vehicles")

	// Инцидент обязан получить хотя бы одно назначение
	if len(vehicleIDs) == 0 {
		return nil, nil, apperrors.Invalidf("at least one vehicle is required")
	}
	// Дубликаты - почти наверняка дефект вызывающей стороны, молча не схлопываем
	seen := make(map[int64]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if _, ok := seen[id]; ok {
			return nil, nil, apperrors.Invalidf("duplicate vehicle id %d", id)
		}
		seen[id] = struct{}{}
	}

	if _, err := s.ownedIncident(ctx, userID, incidentID); err != nil {
		log.WithError(err).Warn("Incident ownership check failed")
		return nil, nil, err
	}

	incident, assignments, err := s.repo.Dispatch(ctx, incidentID, vehicleIDs)
	if err != nil {
		log.WithError(err).Warn("Failed to dispatch incident in repository")
		return nil, nil, fmt.Errorf("service: could not dispatch incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := webhook.NewEvent(webhook.EventIncidentDispatched, incident.ID, string(incident.Status))
	event.InstitutionID = incident.InstitutionID
	event.VehicleIDs = vehicleIDs
	s.publish(ctx, event)

	log.WithField("assignments", len(assignments)).Info("Incident dispatched successfully")
	return incident, assignments, nil
}

// Reject отклоняет заявку: REPORTED -> REJECTED, терминальное состояние
func (s *incidentService) Reject(ctx context.Context, userID, incidentID int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Reject",
		"user_id":     userID,
		"incident_id": incidentID,
	})
	log.Info("Attempting to reject incident")

	if _, err := s.ownedIncident(ctx, userID, incidentID); err != nil {
		log.WithError(err).Warn("Incident ownership check failed")
		return nil, err
	}

	incident, err := s.repo.Reject(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to reject incident in repository")
		return nil, fmt.Errorf("service: could not reject incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := webhook.NewEvent(webhook.EventIncidentRejected, incident.ID, string(incident.Status))
	event.InstitutionID = incident.InstitutionID
	s.publish(ctx, event)

	log.Info("Incident rejected successfully")
	return incident, nil
}

// Finalize закрывает инцидент: HANDLED -> COMPLETED, все машины назначений
// возвращаются в доступность. Закрытие - явное действие учреждения:
// завершение всех машин необходимо, но само по себе инцидент не закрывает.
func (s *incidentService) Finalize(ctx context.Context, userID, incidentID int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Finalize",
		"user_id":     userID,
		"incident_id": incidentID,
	})
	log.Info("Attempting to finalize incident")

	if _, err := s.ownedIncident(ctx, userID, incidentID); err != nil {
		log.WithError(err).Warn("Incident ownership check failed")
		return nil, err
	}

	incident, err := s.repo.Finalize(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to finalize incident in repository")
		return nil, fmt.Errorf("service: could not finalize incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := webhook.NewEvent(webhook.EventIncidentCompleted, incident.ID, string(incident.Status))
	event.InstitutionID = incident.InstitutionID
	s.publish(ctx, event)

	log.Info("Incident finalized successfully")
	return incident, nil
}
