package models

import (
	"time"
)

// AssignmentStatus - под-состояние машины, назначенной на инцидент
type AssignmentStatus string

const (
	AssignmentOnRoute   AssignmentStatus = "ON_ROUTE"
	AssignmentArrived   AssignmentStatus = "ARRIVED"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentOnRoute, AssignmentArrived, AssignmentCompleted:
		return true
	}
	return false
}

// Terminal - назначение закрыто, машина освобождена при финализации инцидента
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentCompleted
}

// CanTransitionTo - строго монотонная прогрессия ON_ROUTE -> ARRIVED -> COMPLETED.
// Переход ON_ROUTE -> COMPLETED не существует: водитель обязан сначала
// отметить прибытие.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	switch s {
	case AssignmentOnRoute:
		return next == AssignmentArrived
	case AssignmentArrived:
		return next == AssignmentCompleted
	}
	return false
}

// IncidentVehicleAssignment - связка инцидент-машина, создается только
// диспетчеризацией. incident_id и vehicle_id неизменяемы после создания,
// driver_id денормализован из машины для аудита.
type IncidentVehicleAssignment struct {
	ID          int64            `json:"id"`
	IncidentID  int64            `json:"incident_id"`
	VehicleID   int64            `json:"vehicle_id"`
	DriverID    int64            `json:"driver_id"`
	Status      AssignmentStatus `json:"status"`
	AssignedAt  time.Time        `json:"assigned_at"`
	ArrivedAt   *time.Time       `json:"arrived_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}
