package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// advance - условный перевод назначения в следующее под-состояние. Назначение
// ищется по (инцидент, машина водителя, ожидаемый текущий статус) одним
// UPDATE ... FROM, поэтому окно между проверкой и записью отсутствует. Ноль
// строк означает "нечего выполнять": нет назначения, чужая машина или
// неподходящий статус.
func (r *AssignmentRepository) advance(ctx context.Context, incidentID, driverID int64, from, to models.AssignmentStatus, stampColumn string) (*models.IncidentVehicleAssignment, error) {
	if !from.CanTransitionTo(to) {
		return nil, apperrors.Conflictf("assignment cannot advance %s -> %s", from, to)
	}
	query := `
		UPDATE incident_vehicle_assignments AS a SET
			status = $3,
			` + stampColumn + ` = NOW()
		FROM vehicles v
		WHERE a.vehicle_id = v.id
			AND a.incident_id = $1
			AND v.driver_id = $2
			AND a.status = $4
		RETURNING a.id, a.incident_id, a.vehicle_id, a.driver_id, a.status, a.assigned_at, a.arrived_at, a.completed_at;
	`
	a, err := scanAssignment(r.db.QueryRow(ctx, query, incidentID, driverID, to, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("no %s assignment on incident %d for this driver", from, incidentID)
		}
		return nil, fmt.Errorf("failed to advance assignment to %s: %w", to, err)
	}
	return a, nil
}

// Arrive переводит назначение ON_ROUTE -> ARRIVED. Доступность машины не
// трогается: машина занята весь интервал ON_ROUTE -> COMPLETED.
func (r *AssignmentRepository) Arrive(ctx context.Context, incidentID, driverID int64) (*models.IncidentVehicleAssignment, error) {
	return r.advance(ctx, incidentID, driverID, models.AssignmentOnRoute, models.AssignmentArrived, "arrived_at")
}

// Complete переводит назначение ARRIVED -> COMPLETED. Перехода из ON_ROUTE
// нет: без отметки прибытия завершение отклоняется как отсутствующая строка.
func (r *AssignmentRepository) Complete(ctx context.Context, incidentID, driverID int64) (*models.IncidentVehicleAssignment, error) {
	return r.advance(ctx, incidentID, driverID, models.AssignmentArrived, models.AssignmentCompleted, "completed_at")
}

// ListIncidentsByDriver возвращает инциденты, на которые назначена машина
// водителя, при необходимости фильтруя по статусу назначения
func (r *AssignmentRepository) ListIncidentsByDriver(ctx context.Context, driverID int64, status models.AssignmentStatus) ([]*models.Incident, error) {
	query := `
		SELECT i.id, i.resident_id, i.institution_id, i.description, i.latitude, i.longitude,
			i.picture, i.status, i.reported_at, i.handled_at, i.completed_at, i.created_at, i.updated_at
		FROM incidents i
		JOIN incident_vehicle_assignments a ON a.incident_id = i.id
		WHERE a.driver_id = $1
		AND ($2 = '' OR a.status = $2)
		ORDER BY a.assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, driverID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list driver incidents: %w", err)
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
