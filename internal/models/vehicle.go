package models

import (
	"time"
)

// Vehicle - машина экстренной службы. IsReady - производный флаг доступности:
// false ровно тогда, когда у машины есть незакрытое назначение. Флаг меняют
// только диспетчеризация и финализация инцидента, прямых записей извне нет.
type Vehicle struct {
	ID            int64     `json:"id"`
	InstitutionID int64     `json:"institution_id"`
	DriverID      int64     `json:"driver_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsReady       bool      `json:"is_ready"`
	Picture       string    `json:"picture,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
