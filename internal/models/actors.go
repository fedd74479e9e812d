package models

import (
	"time"
)

// Role - роль пользователя в системе
type Role string

const (
	RoleResident    Role = "resident"
	RoleInstitution Role = "institution"
	RoleDriver      Role = "driver"
)

func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleInstitution, RoleDriver:
		return true
	}
	return false
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Resident - житель, подающий заявки об инцидентах
type Resident struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	NIK    string `json:"nik,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Institution - учреждение (больница), принимающее и обрабатывающее инциденты
type Institution struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// Driver - водитель машины экстренной службы
type Driver struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	InstitutionID int64  `json:"institution_id"`
	Position      string `json:"position,omitempty"`
	Name          string `json:"name,omitempty"`
}
