package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

// querier покрывает pgxpool.Pool и pgx.Tx, чтобы выборки работали и внутри транзакции
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const assignmentColumns = `
	id,
	incident_id,
	vehicle_id,
	driver_id,
	status,
	assigned_at,
	arrived_at,
	completed_at`

func scanAssignment(row pgx.Row) (*models.IncidentVehicleAssignment, error) {
	a := &models.IncidentVehicleAssignment{}
	err := row.Scan(
		&a.ID,
		&a.IncidentID,
		&a.VehicleID,
		&a.DriverID,
		&a.Status,
		&a.AssignedAt,
		&a.ArrivedAt,
		&a.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *IncidentRepository) listAssignments(ctx context.Context, q querier, incidentID int64) ([]*models.IncidentVehicleAssignment, error) {
	query := `SELECT` + assignmentColumns + `
		FROM incident_vehicle_assignments
		WHERE incident_id = $1
		ORDER BY id;
	`
	rows, err := q.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.IncidentVehicleAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error assignments iteration: %w", err)
	}
	return assignments, nil
}

type lockedVehicle struct {
	driverID int64
	isReady  bool
}

// sameDriverConflict ищет среди заблокированных машин пару с общим водителем.
// Две машины одного водителя на одном инциденте сделали бы поиск назначения
// по (инцидент, водитель) неоднозначным. Схема дублирует этот запрет
// уникальностью vehicles.driver_id.
func sameDriverConflict(vehicleIDs []int64, locked map[int64]lockedVehicle) (first, second int64, found bool) {
	byDriver := make(map[int64]int64, len(vehicleIDs))
	for _, id := range vehicleIDs {
		driverID := locked[id].driverID
		if prev, ok := byDriver[driverID]; ok {
			return prev, id, true
		}
		byDriver[driverID] = id
	}
	return 0, 0, false
}

// dispatchGuard проверяет по машине состояний инцидента, что переход в
// HANDLED допустим из текущего статуса
func dispatchGuard(incidentID int64, status models.IncidentStatus) error {
	if status.Terminal() {
		return apperrors.Conflictf("incident %d is closed (%s)", incidentID, status)
	}
	if !status.CanTransitionTo(models.IncidentHandled) {
		return apperrors.Conflictf("incident %d is %s, only a reported incident can be dispatched", incidentID, status)
	}
	return nil
}

// finalizeGuard проверяет по машине состояний инцидента, что переход в
// COMPLETED допустим из текущего статуса
func finalizeGuard(incidentID int64, status models.IncidentStatus) error {
	if status == models.IncidentCompleted {
		return apperrors.Conflictf("incident %d already finalized", incidentID)
	}
	if !status.CanTransitionTo(models.IncidentCompleted) {
		return apperrors.Conflictf("incident %d is %s, only a handled incident can be finalized", incidentID, status)
	}
	return nil
}

// Dispatch выполняет переход REPORTED -> HANDLED одной транзакцией:
// блокирует инцидент и машины, перепроверяет охранные условия уже под
// блокировкой, создает назначения и снимает доступность машин. Либо
// фиксируется все, либо ничего.
func (r *IncidentRepository) Dispatch(ctx context.Context, incidentID int64, vehicleIDs []int64) (*models.Incident, []*models.IncidentVehicleAssignment, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin dispatch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Блокируем строку инцидента и проверяем его статус
	var status models.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, incidentID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NotFoundf("incident with id %d", incidentID)
		}
		return nil, nil, fmt.Errorf("failed to lock incident for dispatch: %w", err)
	}
	if err := dispatchGuard(incidentID, status); err != nil {
		return nil, nil, err
	}

	// Блокируем машины-кандидаты и перепроверяем доступность под блокировкой
	rows, err := tx.Query(ctx, `SELECT id, driver_id, is_ready FROM vehicles WHERE id = ANY($1) FOR UPDATE;`, vehicleIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock vehicles for dispatch: %w", err)
	}
	locked := make(map[int64]lockedVehicle, len(vehicleIDs))
	for rows.Next() {
		var id, driverID int64
		var isReady bool
		if err := rows.Scan(&id, &driverID, &isReady); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan locked vehicle: %w", err)
		}
		locked[id] = lockedVehicle{driverID: driverID, isReady: isReady}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error vehicles iteration: %w", err)
	}

	// Машины проверяются в порядке, заданном вызывающей стороной
	for _, vehicleID := range vehicleIDs {
		v, ok := locked[vehicleID]
		if !ok {
			return nil, nil, apperrors.NotFoundf("vehicle with id %d", vehicleID)
		}
		if !v.isReady {
			return nil, nil, apperrors.Conflictf("vehicle %d already dispatched", vehicleID)
		}
	}
	if first, second, found := sameDriverConflict(vehicleIDs, locked); found {
		return nil, nil, apperrors.Conflictf("vehicles %d and %d belong to the same driver", first, second)
	}

	// Условное снятие доступности: ноль затронутых строк - сигнал гонки
	tag, err := tx.Exec(ctx, `UPDATE vehicles SET is_ready = false, updated_at = NOW() WHERE id = ANY($1) AND is_ready = true;`, vehicleIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to claim vehicles: %w", err)
	}
	if tag.RowsAffected() != int64(len(vehicleIDs)) {
		return nil, nil, apperrors.Conflictf("vehicle availability changed concurrently for incident %d", incidentID)
	}

	query := `
		UPDATE incidents SET
			status = $2,
			handled_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING` + incidentColumns + `;`
	incident, err := scanIncident(tx.QueryRow(ctx, query, incidentID, models.IncidentHandled, models.IncidentReported))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.Conflictf("incident %d status changed concurrently", incidentID)
		}
		return nil, nil, fmt.Errorf("failed to mark incident handled: %w", err)
	}

	assignments := make([]*models.IncidentVehicleAssignment, 0, len(vehicleIDs))
	insertQuery := `
		INSERT INTO incident_vehicle_assignments (incident_id, vehicle_id, driver_id, status, assigned_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING` + assignmentColumns + `;`
	for _, vehicleID := range vehicleIDs {
		a, err := scanAssignment(tx.QueryRow(ctx, insertQuery,
			incidentID,
			vehicleID,
			locked[vehicleID].driverID,
			models.AssignmentOnRoute,
		))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create assignment for vehicle %d: %w", vehicleID, err)
		}
		assignments = append(assignments, a)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit dispatch transaction: %w", err)
	}
	return incident, assignments, nil
}

// Finalize выполняет переход HANDLED -> COMPLETED одной транзакцией и
// возвращает машины всех назначений в доступность
func (r *IncidentRepository) Finalize(ctx context.Context, incidentID int64) (*models.Incident, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin finalize transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status models.IncidentStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, incidentID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("incident with id %d", incidentID)
		}
		return nil, fmt.Errorf("failed to lock incident for finalize: %w", err)
	}
	if err := finalizeGuard(incidentID, status); err != nil {
		return nil, err
	}

	// Охранное условие перепроверяется внутри транзакции: все назначения закрыты
	assignments, err := r.listAssignments(ctx, tx, incidentID)
	if err != nil {
		return nil, err
	}
	pending := 0
	vehicleIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		if !a.Status.Terminal() {
			pending++
		}
		vehicleIDs = append(vehicleIDs, a.VehicleID)
	}
	if pending > 0 {
		return nil, apperrors.Conflictf("incident %d has %d vehicles still out", incidentID, pending)
	}

	query := `
		UPDATE incidents SET
			status = $2,
			completed_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING` + incidentColumns + `;`
	incident, err := scanIncident(tx.QueryRow(ctx, query, incidentID, models.IncidentCompleted, models.IncidentHandled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Conflictf("incident %d status changed concurrently", incidentID)
		}
		return nil, fmt.Errorf("failed to mark incident completed: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE vehicles SET is_ready = true, updated_at = NOW() WHERE id = ANY($1);`, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to release vehicles: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit finalize transaction: %w", err)
	}
	return incident, nil
}
