package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const incidentColumns = `
	id,
	resident_id,
	institution_id,
	description,
	latitude,
	longitude,
	picture,
	status,
	reported_at,
	handled_at,
	completed_at,
	created_at,
	updated_at`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.ResidentID,
		&incident.InstitutionID,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Picture,
		&incident.Status,
		&incident.ReportedAt,
		&incident.HandledAt,
		&incident.CompletedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в статусе REPORTED
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (resident_id, institution_id, description, latitude, longitude, picture, status, reported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, status, reported_at, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ResidentID,
		incident.InstitutionID,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.Picture,
		models.IncidentReported,
	).Scan(&incident.ID, &incident.Status, &incident.ReportedAt, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его ID
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("incident with id %d", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// GetDetail возвращает инцидент вместе с заявителем и назначениями машин
func (r *IncidentRepository) GetDetail(ctx context.Context, id int64) (*models.IncidentDetail, error) {
	incident, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.IncidentDetail{Incident: *incident}

	residentQuery := `
		SELECT r.id, r.user_id, r.nik, r.phone, u.name
		FROM residents r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1;
	`
	resident := &models.Resident{}
	err = r.db.QueryRow(ctx, residentQuery, incident.ResidentID).Scan(
		&resident.ID,
		&resident.UserID,
		&resident.NIK,
		&resident.Phone,
		&resident.Name,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get incident resident: %w", err)
	}
	if err == nil {
		detail.Resident = resident
	}

	assignments, err := r.listAssignments(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	detail.Assignments = assignments

	return detail, nil
}

// ListByInstitution возвращает инциденты учреждения, при необходимости фильтруя по статусу
func (r *IncidentRepository) ListByInstitution(ctx context.Context, institutionID int64, status models.IncidentStatus) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE institution_id = $1
		AND ($2 = '' OR status = $2)
		ORDER BY reported_at DESC;
	`
	rows, err := r.db.Query(ctx, query, institutionID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListByResident возвращает инциденты, поданные жителем, при необходимости фильтруя по статусу
func (r *IncidentRepository) ListByResident(ctx context.Context, residentID int64, status models.IncidentStatus) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE resident_id = $1
		AND ($2 = '' OR status = $2)
		ORDER BY reported_at DESC;
	`
	rows, err := r.db.Query(ctx, query, residentID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list resident incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Reject переводит инцидент REPORTED -> REJECTED
func (r *IncidentRepository) Reject(ctx context.Context, id int64) (*models.Incident, error) {
	query := `
		UPDATE incidents SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING` + incidentColumns + `;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, models.IncidentRejected, models.IncidentReported))
	if err == nil {
		return incident, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to reject incident: %w", err)
	}

	// Ноль строк: либо инцидента нет, либо он уже не в статусе REPORTED
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if !current.Status.CanTransitionTo(models.IncidentRejected) {
		return nil, apperrors.Conflictf("incident %d is %s, only a reported incident can be rejected", id, current.Status)
	}
	return nil, apperrors.Conflictf("incident %d status changed concurrently", id)
}

// GetIncidentFromCache пытается получить детальную карточку инцидента из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id int64) (*models.IncidentDetail, error) {
	key := fmt.Sprintf("incident:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	detail := &models.IncidentDetail{}
	if err := json.Unmarshal(val, detail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return detail, nil
}

// SetIncidentCache сохраняет детальную карточку инцидента в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, detail *models.IncidentDetail) error {
	key := fmt.Sprintf("incident:%d", detail.ID)
	val, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша. Вызывается на каждом
// переходе машины состояний, чтобы кэш не отдавал устаревший статус.
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("incident:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
