package models

import (
	"time"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentReported  IncidentStatus = "REPORTED"
	IncidentHandled   IncidentStatus = "HANDLED"
	IncidentCompleted IncidentStatus = "COMPLETED"
	IncidentRejected  IncidentStatus = "REJECTED"
)

// Valid проверяет, что статус входит в закрытый набор
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentReported, IncidentHandled, IncidentCompleted, IncidentRejected:
		return true
	}
	return false
}

// Terminal - терминальные статусы, переходов из них нет
func (s IncidentStatus) Terminal() bool {
	return s == IncidentCompleted || s == IncidentRejected
}

// CanTransitionTo описывает допустимые переходы машины состояний инцидента:
// REPORTED -> HANDLED (диспетчеризация), REPORTED -> REJECTED,
// HANDLED -> COMPLETED (финализация). Пропуск состояний запрещен.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	switch s {
	case IncidentReported:
		return next == IncidentHandled || next == IncidentRejected
	case IncidentHandled:
		return next == IncidentCompleted
	}
	return false
}

type Incident struct {
	ID            int64          `json:"id"`
	ResidentID    int64          `json:"resident_id"`
	InstitutionID int64          `json:"institution_id"`
	Description   string         `json:"description"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	Picture       string         `json:"picture,omitempty"`
	Status        IncidentStatus `json:"status"`
	ReportedAt    time.Time      `json:"reported_at"`
	HandledAt     *time.Time     `json:"handled_at,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// IncidentDetail - инцидент вместе с данными заявителя и назначениями машин
type IncidentDetail struct {
	Incident
	Resident    *Resident                    `json:"resident,omitempty"`
	Assignments []*IncidentVehicleAssignment `json:"assignments"`
}
