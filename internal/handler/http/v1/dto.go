package v1

import (
	"time"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя с ролевым профилем
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=resident institution driver"`

	// Ролевые поля профиля
	NIK           string  `json:"nik,omitempty" validate:"required_if=Role resident"`
	Phone         string  `json:"phone,omitempty" validate:"required_if=Role resident"`
	Latitude      float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	InstitutionID int64   `json:"institution_id,omitempty" validate:"required_if=Role driver"`
	Position      string  `json:"position,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO ответа на вход
// @Description DTO ответа на вход с JWT-токеном
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO пользователя
// @Description DTO пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ReportIncidentRequest DTO заявки жителя об инциденте
// @Description DTO заявки жителя об инциденте
type ReportIncidentRequest struct {
	Description string  `json:"description" validate:"required,min=2"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Picture     string  `json:"picture,omitempty"`
}

// DispatchRequest DTO назначения машин на инцидент
// @Description DTO назначения машин на инцидент
type DispatchRequest struct {
	VehicleIDs []int64 `json:"vehicle_ids" validate:"required,min=1,dive,gt=0"`
}

// RegisterVehicleRequest DTO регистрации машины учреждения
// @Description DTO регистрации машины учреждения
type RegisterVehicleRequest struct {
	DriverID    int64  `json:"driver_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`
}

// IncidentResponse DTO инцидента
// @Description DTO инцидента
type IncidentResponse struct {
	ID            int64      `json:"id"`
	ResidentID    int64      `json:"resident_id"`
	InstitutionID int64      `json:"institution_id"`
	Description   string     `json:"description"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Picture       string     `json:"picture,omitempty"`
	Status        string     `json:"status"`
	ReportedAt    time.Time  `json:"reported_at"`
	HandledAt     *time.Time `json:"handled_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ResidentResponse DTO жителя в карточке инцидента
// @Description DTO жителя в карточке инцидента
type ResidentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NIK   string `json:"nik,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// AssignmentResponse DTO назначения машины
// @Description DTO назначения машины на инцидент
type AssignmentResponse struct {
	ID          int64      `json:"id"`
	IncidentID  int64      `json:"incident_id"`
	VehicleID   int64      `json:"vehicle_id"`
	DriverID    int64      `json:"driver_id"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IncidentDetailResponse DTO детальной карточки инцидента
// @Description DTO детальной карточки инцидента
type IncidentDetailResponse struct {
	IncidentResponse
	Resident    *ResidentResponse     `json:"resident,omitempty"`
	Assignments []*AssignmentResponse `json:"assignments"`
}

// DispatchResponse DTO результата назначения машин
// @Description DTO результата назначения машин
type DispatchResponse struct {
	Incident    *IncidentResponse     `json:"incident"`
	Assignments []*AssignmentResponse `json:"assignments"`
}

// VehicleResponse DTO машины
// @Description DTO машины экстренной службы
type VehicleResponse struct {
	ID            int64  `json:"id"`
	InstitutionID int64  `json:"institution_id"`
	DriverID      int64  `json:"driver_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	IsReady       bool   `json:"is_ready"`
	Picture       string `json:"picture,omitempty"`
}
