package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service"
)

type ActorRepository struct {
	db *pgxpool.Pool
}

func NewActorRepository(db *pgxpool.Pool) service.ActorRepository {
	return &ActorRepository{db: db}
}

// uniqueViolation - код 23505 PostgreSQL
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateUser создает пользователя и его ролевой профиль одной транзакцией
func (r *ActorRepository) CreateUser(ctx context.Context, user *models.User, profile *service.RegistrationProfile) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (name, address, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		user.Name,
		user.Address,
		user.Email,
		user.Password,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if uniqueViolation(err) {
			return apperrors.Conflictf("user with email %s already exists", user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	switch user.Role {
	case models.RoleResident:
		_, err = tx.Exec(ctx,
			`INSERT INTO residents (user_id, nik, phone) VALUES ($1, $2, $3);`,
			user.ID, profile.NIK, profile.Phone,
		)
	case models.RoleInstitution:
		_, err = tx.Exec(ctx,
			`INSERT INTO institutions (user_id, latitude, longitude) VALUES ($1, $2, $3);`,
			user.ID, profile.Latitude, profile.Longitude,
		)
	case models.RoleDriver:
		_, err = tx.Exec(ctx,
			`INSERT INTO drivers (user_id, institution_id, position) VALUES ($1, $2, $3);`,
			user.ID, profile.InstitutionID, profile.Position,
		)
	default:
		return apperrors.Invalidf("unknown role %q", user.Role)
	}
	if err != nil {
		if uniqueViolation(err) {
			return apperrors.Conflictf("profile for user %d already exists", user.ID)
		}
		return fmt.Errorf("failed to create %s profile: %w", user.Role, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registration transaction: %w", err)
	}
	return nil
}

// GetUserByEmail возвращает пользователя по email вместе с хэшем пароля
func (r *ActorRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, address, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Address,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("user with email %s", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// ResidentByUserID возвращает профиль жителя для аутентифицированного пользователя
func (r *ActorRepository) ResidentByUserID(ctx context.Context, userID int64) (*models.Resident, error) {
	resident := &models.Resident{}
	query := `
		SELECT r.id, r.user_id, r.nik, r.phone, u.name
		FROM residents r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&resident.ID, &resident.UserID, &resident.NIK, &resident.Phone, &resident.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("resident profile for user %d", userID)
		}
		return nil, fmt.Errorf("failed to get resident by user id: %w", err)
	}
	return resident, nil
}

// InstitutionByUserID возвращает профиль учреждения для аутентифицированного пользователя
func (r *ActorRepository) InstitutionByUserID(ctx context.Context, userID int64) (*models.Institution, error) {
	institution := &models.Institution{}
	query := `
		SELECT i.id, i.user_id, i.latitude, i.longitude, u.name
		FROM institutions i
		JOIN users u ON u.id = i.user_id
		WHERE i.user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&institution.ID, &institution.UserID, &institution.Latitude, &institution.Longitude, &institution.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("institution profile for user %d", userID)
		}
		return nil, fmt.Errorf("failed to get institution by user id: %w", err)
	}
	return institution, nil
}

// DriverByUserID возвращает профиль водителя для аутентифицированного пользователя
func (r *ActorRepository) DriverByUserID(ctx context.Context, userID int64) (*models.Driver, error) {
	driver := &models.Driver{}
	query := `
		SELECT d.id, d.user_id, d.institution_id, d.position, u.name
		FROM drivers d
		JOIN users u ON u.id = d.user_id
		WHERE d.user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&driver.ID, &driver.UserID, &driver.InstitutionID, &driver.Position, &driver.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("driver profile for user %d", userID)
		}
		return nil, fmt.Errorf("failed to get driver by user id: %w", err)
	}
	return driver, nil
}

// InstitutionExists проверяет наличие учреждения перед подачей заявки
func (r *ActorRepository) InstitutionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM institutions WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check institution existence: %w", err)
	}
	return exists, nil
}
