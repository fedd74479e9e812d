package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    IncidentStatus
		to      IncidentStatus
		allowed bool
	}{
		{IncidentReported, IncidentHandled, true},
		{IncidentReported, IncidentRejected, true},
		{IncidentHandled, IncidentCompleted, true},
		// Пропуск состояний запрещен
		{IncidentReported, IncidentCompleted, false},
		// Отклонить можно только необработанную заявку
		{IncidentHandled, IncidentRejected, false},
		// Из терминальных состояний переходов нет
		{IncidentCompleted, IncidentHandled, false},
		{IncidentRejected, IncidentHandled, false},
		{IncidentCompleted, IncidentReported, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIncidentStatusTerminal(t *testing.T) {
	assert.False(t, IncidentReported.Terminal())
	assert.False(t, IncidentHandled.Terminal())
	assert.True(t, IncidentCompleted.Terminal())
	assert.True(t, IncidentRejected.Terminal())
}

func TestIncidentStatusValid(t *testing.T) {
	assert.True(t, IncidentReported.Valid())
	assert.False(t, IncidentStatus("PENDING").Valid())
	assert.False(t, IncidentStatus("").Valid())
}

func TestAssignmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    AssignmentStatus
		to      AssignmentStatus
		allowed bool
	}{
		{AssignmentOnRoute, AssignmentArrived, true},
		{AssignmentArrived, AssignmentCompleted, true},
		// Завершить можно только после прибытия
		{AssignmentOnRoute, AssignmentCompleted, false},
		// Назад дороги нет
		{AssignmentArrived, AssignmentOnRoute, false},
		{AssignmentCompleted, AssignmentArrived, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestAssignmentStatusTerminal(t *testing.T) {
	assert.False(t, AssignmentOnRoute.Terminal())
	assert.False(t, AssignmentArrived.Terminal())
	assert.True(t, AssignmentCompleted.Terminal())
}
