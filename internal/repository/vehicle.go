package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) service.VehicleRepository {
	return &VehicleRepository{db: db}
}

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(
		&v.ID,
		&v.InstitutionID,
		&v.DriverID,
		&v.Name,
		&v.Description,
		&v.IsReady,
		&v.Picture,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create регистрирует машину учреждения. Новая машина всегда доступна.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (institution_id, driver_id, name, description, is_ready, picture)
		VALUES ($1, $2, $3, $4, true, $5)
		RETURNING id, is_ready, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		vehicle.InstitutionID,
		vehicle.DriverID,
		vehicle.Name,
		vehicle.Description,
		vehicle.Picture,
	).Scan(&vehicle.ID, &vehicle.IsReady, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		if uniqueViolation(err) {
			return apperrors.Conflictf("driver %d already has a vehicle", vehicle.DriverID)
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// ListByInstitution возвращает машины учреждения, при необходимости фильтруя по доступности
func (r *VehicleRepository) ListByInstitution(ctx context.Context, institutionID int64, ready *bool) ([]*models.Vehicle, error) {
	query := `
		SELECT id, institution_id, driver_id, name, description, is_ready, picture, created_at, updated_at
		FROM vehicles
		WHERE institution_id = $1
		AND ($2::boolean IS NULL OR is_ready = $2)
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, institutionID, ready)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return vehicles, nil
}
